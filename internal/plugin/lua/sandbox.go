package lua

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// Sandbox restricts Lua execution to safe operations and counts the
// instructions a run executes.
type Sandbox struct {
	L *lua.LState

	instructionLimit int64
	instructionCount int64
}

// NewSandbox creates a new sandbox for the Lua state.
func NewSandbox(L *lua.LState, instructionLimit int64) *Sandbox {
	return &Sandbox{
		L:                L,
		instructionLimit: instructionLimit,
	}
}

// Install removes the loaders that reach the filesystem or compile code at
// runtime and points print at out.
func (s *Sandbox) Install(out io.Writer) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.installPrint(out)
}

// installPrint replaces print with one writing tab-separated values to out.
func (s *Sandbox) installPrint(out io.Writer) {
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, L.GetTop())
		for i := range parts {
			parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
		}
		fmt.Fprintln(out, strings.Join(parts, "\t"))
		return 0
	}))
}

// ResetInstructionCount resets the instruction counter.
func (s *Sandbox) ResetInstructionCount() {
	atomic.StoreInt64(&s.instructionCount, 0)
}

// InstructionCount returns the current instruction count.
func (s *Sandbox) InstructionCount() int64 {
	return atomic.LoadInt64(&s.instructionCount)
}

// IncrementInstructions adds to the instruction count and returns true if limit exceeded.
func (s *Sandbox) IncrementInstructions(n int64) bool {
	if s.instructionLimit <= 0 {
		return false
	}
	count := atomic.AddInt64(&s.instructionCount, n)
	return count > s.instructionLimit
}

// instructionBudget is the context a run executes under. The VM polls
// Done before every instruction, so each poll is counted against the
// sandbox limit. The budget also ends when the parent context does.
type instructionBudget struct {
	context.Context

	sandbox *Sandbox
	done    chan struct{}

	once sync.Once
	mu   sync.Mutex
	err  error
}

func newInstructionBudget(parent context.Context, sandbox *Sandbox) *instructionBudget {
	return &instructionBudget{
		Context: parent,
		sandbox: sandbox,
		done:    make(chan struct{}),
	}
}

func (b *instructionBudget) Done() <-chan struct{} {
	if b.sandbox.IncrementInstructions(1) {
		b.stop(ErrInstructionLimit)
	} else if err := b.Context.Err(); err != nil {
		b.stop(err)
	}
	return b.done
}

func (b *instructionBudget) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

func (b *instructionBudget) stop(err error) {
	b.once.Do(func() {
		b.mu.Lock()
		b.err = err
		b.mu.Unlock()
		close(b.done)
	})
}
