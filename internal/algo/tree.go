package algo

import (
	"fmt"
	"strings"

	"github.com/san-kum/algoviz/internal/step"
)

// idSource hands out node ids that are unique within one generator call.
type idSource struct {
	prefix string
	next   int
}

func (s *idSource) id() string {
	s.next++
	return fmt.Sprintf("%s-%d", s.prefix, s.next)
}

// insertBST places value with the usual ordering; ties go right.
func insertBST(root *step.TreeNode, value int, ids *idSource) *step.TreeNode {
	node := &step.TreeNode{ID: ids.id(), Value: value}
	if root == nil {
		return node
	}
	cur := root
	for {
		if value < cur.Value {
			if cur.Left == nil {
				cur.Left = node
				return root
			}
			cur = cur.Left
		} else {
			if cur.Right == nil {
				cur.Right = node
				return root
			}
			cur = cur.Right
		}
	}
}

func buildBST(values []int) *step.TreeNode {
	ids := &idSource{prefix: "node"}
	var root *step.TreeNode
	for _, v := range values {
		root = insertBST(root, v, ids)
	}
	return root
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, sep)
}

func bstInsertSteps(input []int) []step.Step {
	var steps []step.Step
	var root *step.TreeNode
	ids := &idSource{prefix: "node"}

	emit := func(op step.Operation, highlighted []string, desc string) {
		steps = append(steps, &step.TreeStep{
			Root:             step.CloneTree(root),
			HighlightedNodes: step.CloneStrings(highlighted),
			TraversalOrder:   []int{},
			Operation:        op,
			Description:      desc,
		})
	}

	emit(step.OpInitial, []string{}, fmt.Sprintf("Starting BST insertion with values: [%s]", joinInts(input, ", ")))

	for _, value := range input {
		if root == nil {
			root = &step.TreeNode{ID: ids.id(), Value: value}
			emit(step.OpInsert, []string{root.ID}, fmt.Sprintf("Inserted %d as root node", value))
			continue
		}

		cur := root
		path := []string{}
		for {
			path = append(path, cur.ID)
			emit(step.OpCompare, path, fmt.Sprintf("Comparing %d with node %d", value, cur.Value))

			if value < cur.Value {
				if cur.Left == nil {
					cur.Left = &step.TreeNode{ID: ids.id(), Value: value}
					emit(step.OpInsert, []string{cur.Left.ID}, fmt.Sprintf("Inserted %d as left child of %d", value, cur.Value))
					break
				}
				cur = cur.Left
			} else {
				if cur.Right == nil {
					cur.Right = &step.TreeNode{ID: ids.id(), Value: value}
					emit(step.OpInsert, []string{cur.Right.ID}, fmt.Sprintf("Inserted %d as right child of %d", value, cur.Value))
					break
				}
				cur = cur.Right
			}
		}
	}

	emit(step.OpDone, []string{}, "BST insertion complete!")
	return steps
}

type traversalOrder int

const (
	inorder traversalOrder = iota
	preorder
	postorder
)

func (o traversalOrder) String() string {
	switch o {
	case preorder:
		return "Preorder"
	case postorder:
		return "Postorder"
	default:
		return "Inorder"
	}
}

func (o traversalOrder) pattern() string {
	switch o {
	case preorder:
		return "Root → Left → Right"
	case postorder:
		return "Left → Right → Root"
	default:
		return "Left → Root → Right"
	}
}

// traversalSteps walks a BST built from the whole input and emits one visit
// per node at the point the order dictates.
func traversalSteps(order traversalOrder) Generator {
	return func(input []int) []step.Step {
		root := buildBST(input)
		var steps []step.Step
		visited := []int{}

		emit := func(op step.Operation, highlighted []string, desc string) {
			steps = append(steps, &step.TreeStep{
				Root:             step.CloneTree(root),
				HighlightedNodes: highlighted,
				TraversalOrder:   step.CloneInts(visited),
				Operation:        op,
				Description:      desc,
			})
		}

		emit(step.OpInitial, []string{}, fmt.Sprintf("Starting %s traversal (%s)", strings.ToLower(order.String()), order.pattern()))

		visit := func(n *step.TreeNode) {
			visited = append(visited, n.Value)
			emit(step.OpVisit, []string{n.ID}, fmt.Sprintf("Visiting node %d", n.Value))
		}

		var walk func(n *step.TreeNode)
		walk = func(n *step.TreeNode) {
			if n == nil {
				return
			}
			if order == preorder {
				visit(n)
			}
			walk(n.Left)
			if order == inorder {
				visit(n)
			}
			walk(n.Right)
			if order == postorder {
				visit(n)
			}
		}
		walk(root)

		emit(step.OpDone, []string{}, fmt.Sprintf("%s traversal complete: [%s]", order, joinInts(visited, ", ")))
		return steps
	}
}

var bstInsert = &Definition{
	ID:          "bst-insert",
	Name:        "BST Insertion",
	Category:    CategoryTrees,
	Description: "Insert values into a Binary Search Tree while maintaining BST properties.",
	Code: `func insert(root *Node, value int) *Node {
	if root == nil {
		return &Node{Value: value}
	}
	if value < root.Value {
		root.Left = insert(root.Left, value)
	} else {
		root.Right = insert(root.Right, value)
	}
	return root
}`,
	TimeComplexity:  Complexity{Best: "O(log n)", Average: "O(log n)", Worst: "O(n)"},
	SpaceComplexity: "O(n)",
	Generate:        bstInsertSteps,
}

var inorderTraversal = &Definition{
	ID:          "inorder-traversal",
	Name:        "Inorder Traversal",
	Category:    CategoryTrees,
	Description: "Visit left subtree, then root, then right subtree. Produces sorted order for BST.",
	Code: `func inorder(n *Node, out []int) []int {
	if n == nil {
		return out
	}
	out = inorder(n.Left, out)
	out = append(out, n.Value)
	return inorder(n.Right, out)
}`,
	TimeComplexity:  Complexity{Best: "O(n)", Average: "O(n)", Worst: "O(n)"},
	SpaceComplexity: "O(h)",
	Generate:        traversalSteps(inorder),
}

var preorderTraversal = &Definition{
	ID:          "preorder-traversal",
	Name:        "Preorder Traversal",
	Category:    CategoryTrees,
	Description: "Visit root, then left subtree, then right subtree.",
	Code: `func preorder(n *Node, out []int) []int {
	if n == nil {
		return out
	}
	out = append(out, n.Value)
	out = preorder(n.Left, out)
	return preorder(n.Right, out)
}`,
	TimeComplexity:  Complexity{Best: "O(n)", Average: "O(n)", Worst: "O(n)"},
	SpaceComplexity: "O(h)",
	Generate:        traversalSteps(preorder),
}

var postorderTraversal = &Definition{
	ID:          "postorder-traversal",
	Name:        "Postorder Traversal",
	Category:    CategoryTrees,
	Description: "Visit left subtree, then right subtree, then root.",
	Code: `func postorder(n *Node, out []int) []int {
	if n == nil {
		return out
	}
	out = postorder(n.Left, out)
	out = postorder(n.Right, out)
	return append(out, n.Value)
}`,
	TimeComplexity:  Complexity{Best: "O(n)", Average: "O(n)", Worst: "O(n)"},
	SpaceComplexity: "O(h)",
	Generate:        traversalSteps(postorder),
}
