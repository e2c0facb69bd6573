package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/cutline/internal/app"
	"github.com/dshills/cutline/internal/config"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath string
	logLevel   string
	logFile    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "cutline",
		Short: "Mode-aware selection and clipboard editing from the command line",
		Long: `cutline loads a file into an editing buffer and drives it with the same
selection, clipboard and sort commands a modal editor binds to keys.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "",
		"config file (default: <config dir>/cutline/config.toml)")
	flags.StringVar(&opts.logLevel, "log-level", "",
		"log level (debug, info, warn, error)")
	flags.BoolVar(&opts.logFile, "log-file", false,
		"write the log to the log file in the config directory")

	cmd.AddCommand(newRunCmd(opts), newSortCmd(opts))
	return cmd
}

// loadConfig reads the configuration and applies the flag overrides.
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFile {
		cfg.Log.File = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// open starts an application with path as its current document.
// The caller closes the application.
func (o *rootOptions) open(cmd *cobra.Command, path string) (*app.Application, *app.Document, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	application, err := app.New(app.Options{Config: &cfg, LogOutput: cmd.ErrOrStderr()})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize: %w", err)
	}

	doc, err := application.Open(path)
	if err != nil {
		_ = application.Close()
		return nil, nil, err
	}
	return application, doc, nil
}
