// Package execctx provides the execution context for action handlers.
package execctx

import (
	"github.com/dshills/cutline/internal/clipboard"
	"github.com/dshills/cutline/internal/engine/buffer"
	"github.com/dshills/cutline/internal/engine/cursor"
	"github.com/dshills/cutline/internal/input/mode"
)

// EngineInterface abstracts the current buffer for handlers.
type EngineInterface interface {
	// Cursor
	Cursor() *cursor.Cursor

	// Read operations
	Data() string
	Read(r buffer.Range) (string, bool)
	LineCount() int
	LineLength(line int) int
	LineText(line int) string

	// Edit operations
	DeleteRange(r buffer.Range) error
	Insert(text string) error

	// Grouping for compound edits
	StartOperationGroup()
	EndOperationGroup() error
	Transaction(name string, fn func() error) error

	// Undo/redo
	Undo() error
	Redo() error
	UndoName() string
	RedoName() string
}

// ModeManagerInterface abstracts mode state and transitions for handlers.
// Every switch except SwitchToNormalMode needs an open buffer.
type ModeManagerInterface interface {
	Current() mode.Mode
	CurrentName() string

	SwitchToNormalMode() error
	SwitchToInsertMode() error
	SwitchToSelectMode() error
	SwitchToSelectLineMode() error
	SwitchToSearchMode() error
}

// SearchInterface abstracts search mode commands for handlers.
type SearchInterface interface {
	SetQuery(query string) error
	Accept() error
	Next() error
	Previous() error
}

// ClipboardInterface abstracts the clipboard slot for handlers.
type ClipboardInterface interface {
	SetContent(content clipboard.Content) error
	Content() clipboard.Content
}

// RendererInterface abstracts the view for handlers.
type RendererInterface interface {
	ScrollToCursor() error
}

// ExecutionContext provides context for action execution.
// It contains references to all editor subsystems needed by handlers.
type ExecutionContext struct {
	// Engine is the current buffer, or nil when none is open.
	Engine EngineInterface

	// ModeManager provides mode state.
	ModeManager ModeManagerInterface

	// Search provides search mode commands.
	Search SearchInterface

	// Clipboard provides the copy slot.
	Clipboard ClipboardInterface

	// Renderer provides view operations.
	Renderer RendererInterface

	// Count is the repeat count (1 if not specified).
	Count int

	// Data holds handler-specific context data.
	Data map[string]interface{}
}

// New creates a new execution context.
func New() *ExecutionContext {
	return &ExecutionContext{
		Count: 1,
		Data:  make(map[string]interface{}),
	}
}

// WithEngine returns the context with the engine set.
func (ctx *ExecutionContext) WithEngine(engine EngineInterface) *ExecutionContext {
	ctx.Engine = engine
	return ctx
}

// WithModeManager returns the context with mode manager set.
func (ctx *ExecutionContext) WithModeManager(mm ModeManagerInterface) *ExecutionContext {
	ctx.ModeManager = mm
	return ctx
}

// WithSearch returns the context with search commands set.
func (ctx *ExecutionContext) WithSearch(s SearchInterface) *ExecutionContext {
	ctx.Search = s
	return ctx
}

// WithClipboard returns the context with the clipboard set.
func (ctx *ExecutionContext) WithClipboard(c ClipboardInterface) *ExecutionContext {
	ctx.Clipboard = c
	return ctx
}

// WithRenderer returns the context with renderer set.
func (ctx *ExecutionContext) WithRenderer(renderer RendererInterface) *ExecutionContext {
	ctx.Renderer = renderer
	return ctx
}

// WithCount returns the context with repeat count set.
func (ctx *ExecutionContext) WithCount(count int) *ExecutionContext {
	if count > 0 {
		ctx.Count = count
	}
	return ctx
}

// GetCount returns the repeat count, defaulting to 1.
func (ctx *ExecutionContext) GetCount() int {
	if ctx.Count <= 0 {
		return 1
	}
	return ctx.Count
}

// Mode returns the current mode, or nil without a mode manager.
func (ctx *ExecutionContext) Mode() mode.Mode {
	if ctx.ModeManager == nil {
		return nil
	}
	return ctx.ModeManager.Current()
}

// ModeName returns the current mode name.
func (ctx *ExecutionContext) ModeName() string {
	if ctx.ModeManager == nil {
		return ""
	}
	return ctx.ModeManager.CurrentName()
}

// SetData sets a context data value.
func (ctx *ExecutionContext) SetData(key string, value interface{}) {
	if ctx.Data == nil {
		ctx.Data = make(map[string]interface{})
	}
	ctx.Data[key] = value
}

// GetData retrieves a context data value.
func (ctx *ExecutionContext) GetData(key string) (interface{}, bool) {
	if ctx.Data == nil {
		return nil, false
	}
	v, ok := ctx.Data[key]
	return v, ok
}

// Validate checks that a buffer is open.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Engine == nil {
		return ErrBufferMissing
	}
	return nil
}

// ValidateForMode checks that a buffer is open and modes are available.
func (ctx *ExecutionContext) ValidateForMode() error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if ctx.ModeManager == nil {
		return ErrMissingModeManager
	}
	return nil
}
