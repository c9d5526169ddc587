package viz

import (
	"fmt"
	"io"
	"sync"

	"github.com/san-kum/algoviz/internal/step"
)

// Narrator writes one line per step change. It is the headless stand-in for
// Model.
type Narrator struct {
	mu   sync.Mutex
	w    io.Writer
	done chan struct{}
	once sync.Once
}

func NewNarrator(w io.Writer) *Narrator {
	return &Narrator{w: w, done: make(chan struct{})}
}

func (n *Narrator) OnStepChange(s step.Step, index, total int) {
	n.mu.Lock()
	fmt.Fprintf(n.w, "[%*d/%d] %-9s %s\n", digits(total), index+1, total, s.Op(), s.Narration())
	n.mu.Unlock()

	if index == total-1 {
		n.once.Do(func() { close(n.done) })
	}
}

func (n *Narrator) OnPlayStateChange(bool) {}

// Done is closed once the last step has been narrated.
func (n *Narrator) Done() <-chan struct{} {
	return n.done
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
