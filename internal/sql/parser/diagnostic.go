package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Label is a context breadcrumb pointing into the source.
type Label struct {
	Offset int    `json:"offset"`
	Text   string `json:"text"`
}

// Diagnostic is a parse failure reduced to one location plus the contexts
// the parser was inside of, innermost first.
type Diagnostic struct {
	Source   string  `json:"source"`
	Offset   int     `json:"offset"`
	Kind     string  `json:"kind"`
	Contexts []Label `json:"contexts,omitempty"`
}

func (d *Diagnostic) Error() string {
	line, col := d.Position()
	return fmt.Sprintf("parse error at %d:%d: %s", line, col, d.Kind)
}

// Position returns the 1-based line and column of the failure.
func (d *Diagnostic) Position() (line, col int) {
	return position(d.Source, d.Offset)
}

// ContextNames lists the breadcrumb texts in order.
func (d *Diagnostic) ContextNames() []string {
	out := make([]string, len(d.Contexts))
	for i, l := range d.Contexts {
		out[i] = l.Text
	}
	return out
}

// FormatError reduces a raw parser failure to a Diagnostic over src.
//
// An alternative picks the branch with the most contexts, i.e. the one that
// got furthest into its grammar; on a tie the earlier branch wins.
func FormatError(src string, err error) *Diagnostic {
	if err == nil {
		return nil
	}
	if d, ok := err.(*Diagnostic); ok {
		return d
	}
	return format(src, treeOf(err))
}

func format(src string, tree ErrorTree) *Diagnostic {
	switch t := tree.(type) {
	case *BaseError:
		return &Diagnostic{
			Source: src,
			Offset: t.Location.Offset(),
			Kind:   t.Expected.String(),
		}
	case *StackError:
		d := format(src, t.Base)
		for _, f := range t.Contexts {
			d.Contexts = append(d.Contexts, Label{Offset: f.Location.Offset(), Text: f.Context})
		}
		return d
	case *AltError:
		var best *Diagnostic
		for _, s := range t.Siblings {
			d := format(src, s)
			if best == nil || len(d.Contexts) > len(best.Contexts) {
				best = d
			}
		}
		if best != nil {
			return best
		}
	}
	return &Diagnostic{Source: src, Kind: tree.Error()}
}

func position(src string, off int) (line, col int) {
	if off > len(src) {
		off = len(src)
	}
	before := src[:off]
	line = strings.Count(before, "\n") + 1
	start := strings.LastIndexByte(before, '\n') + 1
	col = utf8.RuneCountInString(before[start:]) + 1
	return line, col
}

func lineAt(src string, line int) string {
	lines := strings.Split(src, "\n")
	if line-1 < len(lines) {
		return strings.TrimRight(lines[line-1], "\r")
	}
	return ""
}

// Render draws the failing source line with a pointer under the failure and
// the context breadcrumbs below it.
//
//	Parse Error: expected "from"
//	  --> 1:12
//	   |
//	 1 | select fart;
//	   |            ^ expected "from"
//	   = in Select statement at 1:1
func (d *Diagnostic) Render() string {
	line, col := d.Position()
	num := strconv.Itoa(line)
	pad := strings.Repeat(" ", len(num))

	var b strings.Builder
	fmt.Fprintf(&b, "Parse Error: %s\n", d.Kind)
	fmt.Fprintf(&b, "%s--> %d:%d\n", pad, line, col)
	fmt.Fprintf(&b, "%s |\n", pad)
	fmt.Fprintf(&b, "%s | %s\n", num, lineAt(d.Source, line))
	fmt.Fprintf(&b, "%s | %s^ %s\n", pad, strings.Repeat(" ", col-1), d.Kind)
	for _, l := range d.Contexts {
		cl, cc := position(d.Source, l.Offset)
		fmt.Fprintf(&b, "%s = in %s at %d:%d\n", pad, l.Text, cl, cc)
	}
	return b.String()
}
