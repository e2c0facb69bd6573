package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/cutline/internal/app"
)

// outputOptions decides what happens to the edited document.
type outputOptions struct {
	write bool
	diff  bool
	color string
}

func (o *outputOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.write, "write", "w", false, "write the result back to the file")
	cmd.Flags().BoolVarP(&o.diff, "diff", "d", false, "print the changed lines instead of the result")
	cmd.Flags().StringVar(&o.color, "color", "auto", "color the diff: auto, always or never")
}

// colorize reports whether diff output to w should carry ANSI colors.
// With "auto" only a terminal gets them.
func (o *outputOptions) colorize(w io.Writer) (bool, error) {
	switch o.color {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	}
	return false, fmt.Errorf("invalid --color %q: want auto, always or never", o.color)
}

// emit saves doc with --write and prints either the diff against original
// or, without --write, the full text.
func (o *outputOptions) emit(cmd *cobra.Command, doc *app.Document, original string) error {
	if o.write && doc.IsModified() {
		if err := doc.Save(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch {
	case o.diff:
		color, err := o.colorize(out)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, lineDiff(original, doc.Content(), color))
		return err
	case !o.write:
		_, err := fmt.Fprint(out, doc.Content())
		return err
	}
	return nil
}

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

// lineDiff lists every line of before and after prefixed with "-" when
// removed, "+" when added and " " when kept. With color, removed lines
// are red and added lines green.
func lineDiff(before, after string, color bool) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix, start := " ", ""
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, start = "-", ansiRed
		case diffmatchpatch.DiffInsert:
			prefix, start = "+", ansiGreen
		}
		if !color {
			start = ""
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(start)
			sb.WriteString(prefix)
			sb.WriteString(strings.TrimSuffix(line, "\n"))
			if start != "" {
				sb.WriteString(ansiReset)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
