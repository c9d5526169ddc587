package algo

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

const (
	defaultFibN    = 5
	minFibN        = 1
	maxFibN        = 7
	defaultQueensN = 4
	minQueensN     = 4
	maxQueensN     = 8
)

// firstOrDefault reads input[0] clamped to [lo, hi]. Empty input and a
// leading zero both select def.
func firstOrDefault(input []int, def, lo, hi int) int {
	if len(input) == 0 || input[0] == 0 {
		return def
	}
	n := input[0]
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// callStack records frames and emits a snapshot of them per step.
type callStack struct {
	frames []step.Frame
	ids    idSource
	board  [][]int
	steps  []step.Step
}

func newCallStack() *callStack {
	return &callStack{ids: idSource{prefix: "frame"}}
}

func (c *callStack) push(fn string, args map[string]any) {
	c.frames = append(c.frames, step.Frame{
		ID:           c.ids.id(),
		FunctionName: fn,
		Args:         args,
		Active:       true,
	})
}

func (c *callStack) pop() {
	c.frames = c.frames[:len(c.frames)-1]
}

// settle records the return value on the top frame and marks it inactive.
func (c *callStack) settle(v any) {
	top := &c.frames[len(c.frames)-1]
	top.ReturnValue = v
	top.Active = false
}

func (c *callStack) emit(op step.Operation, row, col *int, desc string) {
	frames := step.CloneFrames(c.frames)
	if frames == nil {
		frames = []step.Frame{}
	}
	c.steps = append(c.steps, &step.RecursionStep{
		StackFrames: frames,
		BoardState:  step.CloneBoard(c.board),
		CurrentRow:  row,
		CurrentCol:  col,
		Operation:   op,
		Description: desc,
	})
}

func fibonacciSteps(input []int) []step.Step {
	n := firstOrDefault(input, defaultFibN, minFibN, maxFibN)
	c := newCallStack()
	c.emit(step.OpInitial, nil, nil, fmt.Sprintf("Starting Fibonacci calculation for n=%d", n))

	var fib func(k int) int
	fib = func(k int) int {
		c.push("fib", map[string]any{"n": k})
		c.emit(step.OpPush, nil, nil, fmt.Sprintf("Calling fib(%d)", k))

		if k <= 1 {
			c.settle(k)
			c.emit(step.OpExecute, nil, nil, fmt.Sprintf("Base case: fib(%d) = %d", k, k))
			c.pop()
			c.emit(step.OpPop, nil, nil, fmt.Sprintf("Returning %d from fib(%d)", k, k))
			return k
		}

		c.emit(step.OpExecute, nil, nil, fmt.Sprintf("Computing fib(%d) = fib(%d) + fib(%d)", k, k-1, k-2))
		left := fib(k - 1)
		right := fib(k - 2)
		res := left + right

		c.settle(res)
		c.emit(step.OpExecute, nil, nil, fmt.Sprintf("Computed: fib(%d) = %d + %d = %d", k, left, right, res))
		c.pop()
		c.emit(step.OpPop, nil, nil, fmt.Sprintf("Returning %d from fib(%d)", res, k))
		return res
	}
	result := fib(n)

	c.emit(step.OpDone, nil, nil, fmt.Sprintf("Fibonacci calculation complete! fib(%d) = %d", n, result))
	return c.steps
}

func newBoard(n int) [][]int {
	b := make([][]int, n)
	for i := range b {
		b[i] = make([]int, n)
	}
	return b
}

// queenSafe checks the column and both upper diagonals; rows below row are
// still empty.
func queenSafe(board [][]int, row, col int) bool {
	n := len(board)
	for i := 0; i < row; i++ {
		if board[i][col] == 1 {
			return false
		}
	}
	for i, j := row-1, col-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if board[i][j] == 1 {
			return false
		}
	}
	for i, j := row-1, col+1; i >= 0 && j < n; i, j = i-1, j+1 {
		if board[i][j] == 1 {
			return false
		}
	}
	return true
}

func nQueensSteps(input []int) []step.Step {
	n := firstOrDefault(input, defaultQueensN, minQueensN, maxQueensN)
	c := newCallStack()
	c.board = newBoard(n)
	c.emit(step.OpInitial, step.IntPtr(0), step.IntPtr(0), fmt.Sprintf("Starting N-Queens problem with N=%d", n))

	var solve func(row int) bool
	solve = func(row int) bool {
		c.push("solve", map[string]any{"row": row})
		c.emit(step.OpPush, step.IntPtr(row), nil, fmt.Sprintf("Entering solve(row=%d)", row))

		if row == n {
			c.settle(true)
			c.emit(step.OpExecute, step.IntPtr(row), nil, "All queens placed successfully!")
			c.pop()
			c.emit(step.OpPop, step.IntPtr(row-1), nil, fmt.Sprintf("Returning true from solve(row=%d)", row))
			return true
		}

		for col := 0; col < n; col++ {
			c.emit(step.OpExecute, step.IntPtr(row), step.IntPtr(col), fmt.Sprintf("Trying to place queen at (%d, %d)", row, col))
			if !queenSafe(c.board, row, col) {
				continue
			}

			c.board[row][col] = 1
			c.emit(step.OpExecute, step.IntPtr(row), step.IntPtr(col), fmt.Sprintf("Placed queen at (%d, %d) - position is safe", row, col))

			if solve(row + 1) {
				c.settle(true)
				c.pop()
				c.emit(step.OpPop, step.IntPtr(row-1), nil, fmt.Sprintf("Returning true from solve(row=%d)", row))
				return true
			}

			c.board[row][col] = 0
			c.emit(step.OpBacktrack, step.IntPtr(row), step.IntPtr(col), fmt.Sprintf("Backtracking: removed queen from (%d, %d)", row, col))
		}

		c.settle(false)
		c.pop()
		c.emit(step.OpPop, step.IntPtr(row-1), nil, fmt.Sprintf("No valid position in row %d, returning false", row))
		return false
	}
	solve(0)

	c.emit(step.OpDone, nil, nil, "N-Queens problem solved!")
	return c.steps
}

var fibonacciRecursive = &Definition{
	ID:          "fibonacci-recursive",
	Name:        "Recursive Fibonacci",
	Category:    CategoryRecursion,
	Description: "Calculate Fibonacci numbers using recursion to demonstrate call stack depth.",
	Code: `func fib(n int) int {
	if n <= 1 {
		return n
	}
	return fib(n-1) + fib(n-2)
}`,
	TimeComplexity:  Complexity{Best: "O(2^n)", Average: "O(2^n)", Worst: "O(2^n)"},
	SpaceComplexity: "O(n)",
	Generate:        fibonacciSteps,
}

var nQueens = &Definition{
	ID:          "n-queens",
	Name:        "N-Queens Problem",
	Category:    CategoryRecursion,
	Description: "Place N queens on an NxN chessboard so that no two queens attack each other.",
	Code: `func solve(board [][]int, row int) bool {
	n := len(board)
	if row == n {
		return true
	}
	for col := 0; col < n; col++ {
		if isSafe(board, row, col) {
			board[row][col] = 1
			if solve(board, row+1) {
				return true
			}
			board[row][col] = 0
		}
	}
	return false
}`,
	TimeComplexity:  Complexity{Best: "O(N!)", Average: "O(N!)", Worst: "O(N!)"},
	SpaceComplexity: "O(N²)",
	Generate:        nQueensSteps,
}
