package app

import (
	"os"

	"github.com/dshills/cutline/internal/clipboard"
	"github.com/dshills/cutline/internal/config"
	"github.com/dshills/cutline/internal/dispatcher"
	"github.com/dshills/cutline/internal/input/mode"
	"github.com/dshills/cutline/internal/renderer/viewport"
)

// bootstrapper initializes application components in dependency order.
type bootstrapper struct {
	app  *Application
	opts Options
}

func newBootstrapper(app *Application, opts Options) *bootstrapper {
	return &bootstrapper{app: app, opts: opts}
}

func (b *bootstrapper) bootstrap() error {
	b.initConfig()

	if err := b.initLogger(); err != nil {
		return err
	}
	b.initClipboard()
	b.initViewport()
	b.initModeManager()
	b.initDispatcher()

	b.app.Logger().Debug("cutline started")
	return nil
}

func (b *bootstrapper) initConfig() {
	if b.opts.Config != nil {
		b.app.config = *b.opts.Config
		return
	}
	b.app.config = config.Default()
}

// initLogger builds the logger from the log settings. With log.file set,
// output goes to the log file in the preferences directory.
func (b *bootstrapper) initLogger() error {
	if b.opts.Logger != nil {
		b.app.logger = b.opts.Logger
		return nil
	}

	cfg := b.app.config.Log
	loggerCfg := DefaultLoggerConfig()
	loggerCfg.Level = ParseLogLevel(cfg.Level)

	if !cfg.File {
		loggerCfg.Output = b.opts.LogOutput
		if loggerCfg.Output == nil {
			loggerCfg.Output = os.Stderr
		}
		b.app.logger = NewLogger(loggerCfg)
		return nil
	}

	dir, err := config.Directory()
	if err != nil {
		return NewOperationError("open log", "", err)
	}
	f, err := OpenLogFile(dir)
	if err != nil {
		return err
	}
	loggerCfg.Output = f
	b.app.logFile = f
	b.app.logger = NewLogger(loggerCfg)
	return nil
}

func (b *bootstrapper) initClipboard() {
	syncer := b.opts.Syncer
	if syncer == nil && b.app.config.Clipboard.System {
		syncer = clipboard.SystemSyncer{}
	}
	b.app.clipboard = clipboard.New(syncer)
}

func (b *bootstrapper) initViewport() {
	view := b.app.config.View
	vp := viewport.NewViewport(view.Width, view.Height)
	vp.SetMargins(viewport.ScrollMargins(view.ScrollMargin))
	b.app.viewport = vp
}

func (b *bootstrapper) initModeManager() {
	b.app.modeManager = mode.NewManager()

	logger := b.app.Logger().WithComponent("mode")
	b.app.modeManager.OnChange(func(from, to mode.Mode) {
		logger.Debug("mode %s -> %s", from.Name(), to.Name())
	})
}

func (b *bootstrapper) initDispatcher() {
	d := dispatcher.New(dispatcher.WithStats())
	RegisterHandlers(d)
	d.UseLogger(b.app.Logger().WithComponent("dispatcher"))
	b.app.dispatcher = d
}
