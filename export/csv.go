package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/obstools/headerdoc/spec"
)

// csvColumns is the fixed header row of the tab-separated output.
var csvColumns = []string{
	"Source", "Group", "Header", "Type", "Spec", "Description", "Example", "Notes",
}

// WriteCSV writes one tab-separated row per card, in insertion order, after
// the fixed column header. Field values are written verbatim; spec files do
// not contain tabs or newlines, so no delimiter escaping is applied.
func WriteCSV(w io.Writer, cards *spec.CardSet) error {
	if _, err := fmt.Fprintln(w, strings.Join(csvColumns, "\t")); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, c := range cards.Cards() {
		row := []string{c.Source, c.Group, c.Header, c.Type, c.Spec, c.Description, c.Example, c.Notes}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return fmt.Errorf("write CSV row: %w", err)
		}
	}
	return nil
}

// WriteCSVFile writes the cards as tab-separated values to path.
func WriteCSVFile(path string, cards *spec.CardSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	if err := WriteCSV(f, cards); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close CSV file: %w", err)
	}
	return nil
}
