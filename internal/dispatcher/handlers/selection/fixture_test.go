package selection

import (
	"errors"

	"github.com/dshills/cutline/internal/clipboard"
	"github.com/dshills/cutline/internal/dispatcher/execctx"
	"github.com/dshills/cutline/internal/engine"
	"github.com/dshills/cutline/internal/engine/buffer"
	"github.com/dshills/cutline/internal/input/mode"
	"github.com/dshills/cutline/internal/search"
)

// testApp is a minimal application around one engine.
type testApp struct {
	eng       *engine.Engine
	modes     *mode.Manager
	clip      *clipboard.Clipboard
	sync      *fakeSyncer
	scrolls   int
	scrollErr error
}

func newTestApp(text string) *testApp {
	s := &fakeSyncer{}
	return &testApp{
		eng:   engine.New(engine.WithContent(text)),
		modes: mode.NewManager(),
		clip:  clipboard.New(s),
		sync:  s,
	}
}

func (a *testApp) ctx() *execctx.ExecutionContext {
	ctx := execctx.New().
		WithModeManager(a).
		WithClipboard(a.clip).
		WithRenderer(a)
	if a.eng != nil {
		ctx.WithEngine(a.eng)
	}
	return ctx
}

func (a *testApp) moveTo(line, offset int) {
	if !a.eng.Cursor().MoveTo(buffer.Position{Line: line, Offset: offset}) {
		panic("invalid test cursor position")
	}
}

// acceptSearch runs query and selects the match closest to the cursor.
func (a *testApp) acceptSearch(query string) {
	rs := search.Find(query, a.eng.Data(), false)
	rs.SelectClosest(a.eng.Cursor().Position())
	a.modes.Switch(mode.Search{Query: query, Results: rs})
}

func (a *testApp) Current() mode.Mode  { return a.modes.Current() }
func (a *testApp) CurrentName() string { return a.modes.CurrentName() }

func (a *testApp) SwitchToNormalMode() error {
	a.modes.Switch(mode.Normal{})
	return nil
}

func (a *testApp) SwitchToInsertMode() error {
	if a.eng == nil {
		return ErrBufferMissing
	}
	a.modes.Switch(mode.Insert{})
	return nil
}

func (a *testApp) SwitchToSelectMode() error {
	if a.eng == nil {
		return ErrBufferMissing
	}
	a.modes.Switch(mode.Select{Anchor: a.eng.Cursor().Position()})
	return nil
}

func (a *testApp) SwitchToSelectLineMode() error {
	if a.eng == nil {
		return ErrBufferMissing
	}
	a.modes.Switch(mode.SelectLine{Anchor: a.eng.Cursor().Line()})
	return nil
}

func (a *testApp) SwitchToSearchMode() error {
	if a.eng == nil {
		return ErrBufferMissing
	}
	a.modes.Switch(mode.Search{})
	return nil
}

func (a *testApp) ScrollToCursor() error {
	a.scrolls++
	return a.scrollErr
}

type fakeSyncer struct {
	text string
	fail bool
}

func (f *fakeSyncer) WriteAll(text string) error {
	if f.fail {
		return errors.New("clipboard offline")
	}
	f.text = text
	return nil
}

func (f *fakeSyncer) ReadAll() (string, error) {
	return f.text, nil
}
