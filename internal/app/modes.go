package app

import (
	"github.com/dshills/cutline/internal/input/mode"
)

// modeController performs mode transitions for handlers. Every switch
// except to normal mode reads the cursor and so needs a current document.
type modeController struct {
	app *Application
}

func (m modeController) Current() mode.Mode {
	return m.app.modeManager.Current()
}

func (m modeController) CurrentName() string {
	return m.app.modeManager.CurrentName()
}

func (m modeController) SwitchToNormalMode() error {
	m.app.modeManager.Switch(mode.Normal{})
	return nil
}

func (m modeController) SwitchToInsertMode() error {
	if m.app.current() == nil {
		return ErrBufferMissing
	}
	m.app.modeManager.Switch(mode.Insert{})
	return nil
}

func (m modeController) SwitchToSelectMode() error {
	doc := m.app.current()
	if doc == nil {
		return ErrBufferMissing
	}
	m.app.modeManager.Switch(mode.Select{Anchor: doc.Engine.Cursor().Position()})
	return nil
}

func (m modeController) SwitchToSelectLineMode() error {
	doc := m.app.current()
	if doc == nil {
		return ErrBufferMissing
	}
	m.app.modeManager.Switch(mode.SelectLine{Anchor: doc.Engine.Cursor().Line()})
	return nil
}

// SwitchToSearchMode starts a search seeded with the last accepted query.
func (m modeController) SwitchToSearchMode() error {
	if m.app.current() == nil {
		return ErrBufferMissing
	}
	m.app.mu.Lock()
	query := m.app.lastQuery
	m.app.mu.Unlock()

	m.app.modeManager.Switch(mode.Search{Query: query})
	return nil
}
