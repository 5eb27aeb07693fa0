package spec

import (
	"bytes"
	"context"
	"fmt"
)

// Fetcher retrieves the raw contents of a named spec file.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// Combine fetches and parses the named spec files in order, merging their
// groups and cards into one set each. The list order is the override order:
// when two files define the same header keyword or group id, the later file
// wins. A fetch failure aborts the whole combine with an error naming the
// failed file; there is no partial result and no retry.
func Combine(ctx context.Context, f Fetcher, names []string) (*GroupSet, *CardSet, error) {
	groups := NewGroupSet()
	cards := NewCardSet()

	for _, name := range names {
		body, err := f.Fetch(ctx, name)
		if err != nil {
			return nil, nil, fmt.Errorf("combine spec files: %w", err)
		}
		g, c, err := Parse(name, bytes.NewReader(body))
		if err != nil {
			return nil, nil, fmt.Errorf("combine spec files: %w", err)
		}
		groups.Merge(g)
		cards.Merge(c)
	}

	return groups, cards, nil
}
