package app

import (
	"io"
	"sync"

	"github.com/dshills/cutline/internal/clipboard"
	"github.com/dshills/cutline/internal/config"
	"github.com/dshills/cutline/internal/dispatcher"
	"github.com/dshills/cutline/internal/engine"
	"github.com/dshills/cutline/internal/input/mode"
	"github.com/dshills/cutline/internal/renderer/viewport"
)

// Application is the central coordinator for all Cutline components.
// It owns the open documents, the mode, the clipboard and the view, and
// supplies them to action handlers through the dispatcher.
type Application struct {
	mu sync.Mutex

	config config.Config
	logger *Logger

	// logFile is closed by Close when the application opened it.
	logFile io.Closer

	workspace   *Workspace
	modeManager *mode.Manager
	clipboard   *clipboard.Clipboard
	viewport    *viewport.Viewport
	dispatcher  *dispatcher.Dispatcher

	// lastQuery seeds the next search mode.
	lastQuery string

	closed bool
}

// Options configures the application.
type Options struct {
	// Config holds the settings. The zero value means config.Default().
	Config *config.Config

	// Logger overrides the logger built from Config.Log.
	Logger *Logger

	// LogOutput receives log lines when log.file is off. Defaults to
	// os.Stderr.
	LogOutput io.Writer

	// Syncer overrides the clipboard syncer chosen from Config.Clipboard.
	Syncer clipboard.Syncer
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		workspace: NewWorkspace(),
	}

	if err := newBootstrapper(app, opts).bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// Close releases resources held by the application.
func (app *Application) Close() error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.closed {
		return nil
	}
	app.closed = true

	if s := app.dispatcher.Stats(); s != nil {
		app.Logger().WithComponent("dispatcher").Debug("%s", s)
	}

	if app.logFile == nil {
		return nil
	}
	err := app.logFile.Close()
	app.logFile = nil
	return err
}

// Config returns the application settings.
func (app *Application) Config() config.Config {
	return app.config
}

// Workspace returns the open documents.
func (app *Application) Workspace() *Workspace {
	return app.workspace
}

// ModeManager returns the mode manager.
func (app *Application) ModeManager() *mode.Manager {
	return app.modeManager
}

// Clipboard returns the clipboard.
func (app *Application) Clipboard() *clipboard.Clipboard {
	return app.clipboard
}

// Viewport returns the view used to keep the cursor visible.
func (app *Application) Viewport() *viewport.Viewport {
	return app.viewport
}

// Dispatcher returns the action dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Open reads a file into a new current document and returns to normal mode.
func (app *Application) Open(path string) (*Document, error) {
	doc, err := app.workspace.Open(path)
	if err != nil {
		return nil, err
	}
	app.documentChanged(doc)
	return doc, nil
}

// AddDocument adds doc to the workspace as the current document and
// returns to normal mode.
func (app *Application) AddDocument(doc *Document) {
	app.workspace.Add(doc)
	app.documentChanged(doc)
}

// NextDocument makes the next document current.
func (app *Application) NextDocument() *Document {
	doc := app.workspace.Next()
	if doc != nil {
		app.documentChanged(doc)
	}
	return doc
}

// documentChanged drops mode state that belonged to the previous document.
func (app *Application) documentChanged(doc *Document) {
	app.Logger().WithField("document", doc.Name).Debug("current document changed")
	if app.modeManager.CurrentName() != mode.ModeNormal {
		app.modeManager.Switch(mode.Normal{})
	}
	app.viewport.ScrollTo(0)
}

// current returns the current document, or nil.
func (app *Application) current() *Document {
	return app.workspace.Current()
}

// Text returns the current document's text.
func (app *Application) Text() (string, bool) {
	doc := app.current()
	if doc == nil {
		return "", false
	}
	return doc.Content(), true
}

// ModeName returns the name of the current mode.
func (app *Application) ModeName() string {
	return app.modeManager.CurrentName()
}

// CursorPosition returns the cursor of the current document.
func (app *Application) CursorPosition() (engine.Position, bool) {
	doc := app.current()
	if doc == nil {
		return engine.Position{}, false
	}
	return doc.Engine.Cursor().Position(), true
}

// ClipboardContent returns what the editor last copied. Unlike paste it
// does not pick up text copied by other programs.
func (app *Application) ClipboardContent() clipboard.Content {
	return app.clipboard.Stored()
}
