// Package libdiff renders character-level diffs of patched text, for
// previewing what a substitution did before (or instead of) writing it.
package libdiff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Printer struct {
	// Colored selects ANSI red/green for delete/insert runs.
	Colored bool
	// Context is how many bytes of equal text to keep around each
	// changed run; longer equal runs are elided. Zero means 24.
	Context int
}

var (
	delSprintf = color.RedString
	insSprintf = color.GreenString
)

// Print writes a compact diff of from and to. Equal inputs produce no
// output and a false changed result.
func (p *Printer) Print(w io.Writer, from, to string) (changed bool, err error) {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, true)
	diffs = dmp.DiffCleanupSemantic(diffs)

	equal := true
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			equal = false
			break
		}
	}
	if equal {
		return false, nil
	}

	ctx := p.Context
	if ctx == 0 {
		ctx = 24
	}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffEqual:
			if _, err := io.WriteString(w, elide(diff.Text, ctx, i == 0, i == len(diffs)-1)); err != nil {
				return changed, err
			}
		case diffpatch.DiffDelete:
			changed = true
			if err := p.writeRun(w, "-", delSprintf, diff.Text); err != nil {
				return changed, err
			}
		case diffpatch.DiffInsert:
			changed = true
			if err := p.writeRun(w, "+", insSprintf, diff.Text); err != nil {
				return changed, err
			}
		}
	}
	if changed {
		_, err = io.WriteString(w, "\n")
	}
	return changed, err
}

func (p *Printer) writeRun(w io.Writer, mark string, sprintf func(string, ...any) string, text string) error {
	run := "[" + mark + text + mark + "]"
	if p.Colored {
		run = sprintf("%s", run)
	}
	_, err := io.WriteString(w, run)
	return err
}

// elide shortens an equal run to ctx bytes on the side(s) that border a
// change, so the preview stays one screenful for large files.
func elide(text string, ctx int, first, last bool) string {
	if len(text) <= 2*ctx+5 {
		return text
	}
	head := text[:ctx]
	tail := text[len(text)-ctx:]
	switch {
	case first:
		return "..." + tail
	case last:
		return head + "..."
	default:
		return head + "..." + tail
	}
}

// Summary is the one-line report printed after a patch, e.g.
// "2 occurrences replaced" or "no occurrences of target".
func Summary(n int) string {
	switch n {
	case 0:
		return "no occurrences of target"
	case 1:
		return "1 occurrence replaced"
	default:
		return fmt.Sprintf("%d occurrences replaced", n)
	}
}
