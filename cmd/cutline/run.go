package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/cutline/internal/plugin/lua"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	var script string
	var out outputOptions

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a Lua editing script against a file",
		Long: `run loads FILE, runs the script with the editor table available and prints
the result. Output from print in the script goes to stderr.`,
		Example: `  cutline run notes.txt --script dedupe.lua --diff`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, doc, err := root.open(cmd, args[0])
			if err != nil {
				return err
			}
			defer func() { _ = application.Close() }()

			state, err := lua.NewState(
				lua.WithInstructionLimit(application.Config().Script.InstructionLimit),
				lua.WithOutput(cmd.ErrOrStderr()),
			)
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()
			lua.OpenEditor(state, application)

			original := doc.Content()
			if err := state.DoFile(script); err != nil {
				return fmt.Errorf("running %s: %w", script, err)
			}
			return out.emit(cmd, doc, original)
		},
	}

	cmd.Flags().StringVarP(&script, "script", "s", "", "Lua script to run")
	_ = cmd.MarkFlagRequired("script")
	out.register(cmd)
	return cmd
}
