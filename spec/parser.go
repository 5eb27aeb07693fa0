package spec

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// blankToken marks a group-definition line.
const blankToken = "BLANK"

// Parse reads one spec file and returns its group definitions and cards.
// Lines starting with "#" and blank lines are skipped. BLANK lines declare a
// group id and description; malformed ones (missing id or description) are
// silently dropped. Every other line becomes a card: key, type, spec, and the rest of
// the line as description. A key of the form group:header assigns the card
// to that group, otherwise the group is "None". "!" required markers are
// stripped from the header. Lines too short to carry a description get a
// single-space description.
func Parse(source string, r io.Reader) (*GroupSet, *CardSet, error) {
	groups := NewGroupSet()
	cards := NewCardSet()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, blankToken) {
			fields := Fields(line, 2)
			if len(fields) == 3 && strings.TrimSpace(fields[2]) != "" {
				groups.Put(fields[1], fields[2])
			}
			continue
		}
		cards.Put(parseCard(source, line))
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read spec file %s: %w", source, err)
	}

	return groups, cards, nil
}

// parseCard turns one keyword line into a card.
func parseCard(source, line string) *Card {
	fields := Fields(line, 3)
	for len(fields) < 3 {
		fields = append(fields, "")
	}
	if len(fields) < 4 {
		fields = append(fields, " ")
	}

	group := NoGroup
	header := fields[0]
	if idx := strings.Index(header, ":"); idx >= 0 {
		group, header = header[:idx], header[idx+1:]
	}
	header = strings.ReplaceAll(header, "!", "")

	return &Card{
		Source:      source,
		Group:       group,
		Header:      header,
		Type:        fields[1],
		Spec:        fields[2],
		Description: fields[3],
	}
}
