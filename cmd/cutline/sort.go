package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/cutline/internal/app"
	cursorhandler "github.com/dshills/cutline/internal/dispatcher/handlers/cursor"
	modehandler "github.com/dshills/cutline/internal/dispatcher/handlers/mode"
	selectionhandler "github.com/dshills/cutline/internal/dispatcher/handlers/selection"
	"github.com/dshills/cutline/internal/input"
)

func newSortCmd(root *rootOptions) *cobra.Command {
	var from, to int
	var out outputOptions

	cmd := &cobra.Command{
		Use:   "sort FILE",
		Short: "Sort lines of a file",
		Long: `sort selects lines FROM through TO (1-based, inclusive) and sorts them in
byte order. Without --from and --to the whole file is sorted. The sorted
lines always end with a newline.`,
		Example: `  cutline sort words.txt --write
  cutline sort imports.go --from 3 --to 9 --diff`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if from < 0 || to < 0 || (to > 0 && from > to) {
				return fmt.Errorf("invalid line range %d..%d", from, to)
			}

			application, doc, err := root.open(cmd, args[0])
			if err != nil {
				return err
			}
			defer func() { _ = application.Close() }()

			original := doc.Content()
			if err := sortLines(application, doc, from, to); err != nil {
				return err
			}
			return out.emit(cmd, doc, original)
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "first line to sort (default 1)")
	cmd.Flags().IntVar(&to, "to", 0, "last line to sort (default last line)")
	out.register(cmd)
	return cmd
}

// sortLines selects the requested lines and sorts them.
func sortLines(application *app.Application, doc *app.Document, from, to int) error {
	var actions []input.Action
	if from == 0 && to == 0 {
		actions = append(actions, input.NewAction(selectionhandler.ActionSelectAll))
	} else {
		if from == 0 {
			from = 1
		}
		if to == 0 {
			to = doc.Engine.LineCount()
		}
		actions = append(actions,
			moveToLine(from-1),
			input.NewAction(modehandler.ActionSelectLine),
			moveToLine(to-1),
		)
	}
	actions = append(actions, input.NewAction(selectionhandler.ActionSortLines))

	for _, action := range actions {
		if result := application.Dispatch(action); result.IsError() {
			return fmt.Errorf("%s: %w", action.Name, result.Error)
		}
	}
	return nil
}

func moveToLine(line int) input.Action {
	return input.NewAction(cursorhandler.ActionMoveTo).
		WithExtra("line", line).
		WithExtra("offset", 0)
}
