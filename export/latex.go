// Package export renders combined spec cards as LaTeX tables or
// tab-separated values.
package export

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/obstools/headerdoc/spec"
)

// latexEscapes lists LaTeX replacements in application order. Backslash must
// come first so the backslashes introduced by later substitutions are not
// themselves escaped. An ordered slice, never a map: the order is the
// contract.
var latexEscapes = []struct{ old, new string }{
	{`\`, `\textbackslash{}`},
	{"&", `\&`},
	{"%", `\%`},
	{"$", `\$`},
	{"#", `\#`},
	{"_", `\_`},
	{"{", `\{`},
	{"}", `\}`},
	{"~", `\textasciitilde{}`},
	{"^", `\textasciicircum{}`},
}

// EscapeLaTeX escapes LaTeX special characters in a string.
func EscapeLaTeX(text string) string {
	for _, r := range latexEscapes {
		text = strings.ReplaceAll(text, r.old, r.new)
	}
	return text
}

// dashRuns matches the ---- decoration around group descriptions in the raw
// spec text.
var dashRuns = regexp.MustCompile("--+")

// LaTeXWriter renders cards as one table per group.
type LaTeXWriter struct {
	sb strings.Builder
}

// NewLaTeXWriter creates a new LaTeX writer.
func NewLaTeXWriter() *LaTeXWriter {
	return &LaTeXWriter{}
}

// Write renders a version line followed by one subsubsection and tabular
// block per non-empty group. Each table lists header name, type, and
// description. If the card set contains the HEADVER keyword, its spec value
// overrides the passed-in version; the override is resolved before the
// version line is emitted.
func (w *LaTeXWriter) Write(groups *spec.GroupSet, cards *spec.CardSet, version string) {
	if c, ok := cards.Get("HEADVER"); ok {
		version = c.Spec
	}
	fmt.Fprintf(&w.sb, "Header Version: %s\n", version)

	for _, b := range groupCards(groups, cards) {
		if len(b.cards) == 0 {
			continue
		}
		w.writeTable(headingFor(b.id, groups), b.cards)
	}
}

// String returns the accumulated LaTeX output.
func (w *LaTeXWriter) String() string {
	return w.sb.String()
}

// writeTable emits one subsubsection heading and its tabular block.
func (w *LaTeXWriter) writeTable(heading string, cards []*spec.Card) {
	fmt.Fprintf(&w.sb, "\n\\subsubsection{%s}\n\n", heading)
	w.sb.WriteString("\n\\begin{tabular}{l l l l l}\n\\hline\nHeader & Type & Description \\\\\n\\hline\n")
	for _, c := range cards {
		header := strings.ReplaceAll(c.Header, ".", " ")
		fmt.Fprintf(&w.sb, "%s & %s & %s \\\\\n",
			EscapeLaTeX(header), EscapeLaTeX(c.Type), EscapeLaTeX(c.Description))
	}
	w.sb.WriteString("\\hline\n\\end{tabular}\n\n")
}

// bucket holds the cards of one group in insertion order.
type bucket struct {
	id    string
	cards []*spec.Card
}

// groupCards partitions cards by group. The bucket order is the "None" group
// first, then the supplied groups in their insertion order, then any group
// found only on cards, appended at first encounter.
func groupCards(groups *spec.GroupSet, cards *spec.CardSet) []*bucket {
	order := []*bucket{{id: spec.NoGroup}}
	index := map[string]*bucket{spec.NoGroup: order[0]}
	for _, id := range groups.IDs() {
		if _, ok := index[id]; ok {
			continue
		}
		b := &bucket{id: id}
		order = append(order, b)
		index[id] = b
	}

	for _, c := range cards.Cards() {
		b, ok := index[c.Group]
		if !ok {
			b = &bucket{id: c.Group}
			order = append(order, b)
			index[c.Group] = b
		}
		b.cards = append(b.cards, c)
	}

	return order
}

// headingFor resolves the display heading of a group: the supplied
// description when one exists, otherwise a placeholder. Run-length dash
// decoration is stripped before escaping.
func headingFor(id string, groups *spec.GroupSet) string {
	description := groups.Get(id)
	if description == "" {
		if id == spec.NoGroup {
			description = "No Group Assigned"
		} else {
			description = id + " Group"
		}
	}
	description = dashRuns.ReplaceAllString(description, "")
	return EscapeLaTeX(strings.TrimSpace(description))
}

// WriteLaTeXFile renders the cards and writes the result to path.
func WriteLaTeXFile(path string, groups *spec.GroupSet, cards *spec.CardSet, version string) error {
	w := NewLaTeXWriter()
	w.Write(groups, cards, version)
	if err := os.WriteFile(path, []byte(w.String()), 0644); err != nil {
		return fmt.Errorf("write LaTeX file: %w", err)
	}
	return nil
}
