// Package spec parses observatory header spec files into structured cards.
//
// A spec file is line oriented: each non-comment line either declares a
// group (lines starting with the BLANK token) or one FITS header keyword.
// Keyword lines carry a group-qualified key, a type, a constraint/default
// value, and a free-text description.
package spec

// Card is one parsed header keyword definition.
type Card struct {
	// Source is the name of the spec file the card came from.
	Source string
	// Group is the card's category key, "None" when the key had no
	// group prefix.
	Group string
	// Header is the FITS keyword name with any "!" required marker removed.
	Header string
	// Type is the declared data type, free text (e.g. "STRING", "FLOAT").
	Type string
	// Spec is the constraint or default value field.
	Spec string
	// Description is the free-text explanation of the keyword.
	Description string
	// Example is a demo value filled in by the annotator, empty otherwise.
	Example string
	// Notes is optional free text.
	Notes string
}

// NoGroup is the group assigned to cards whose key carries no group prefix.
const NoGroup = "None"

// CardSet is an insertion-ordered map of header keyword to card. Putting a
// card whose header is already present replaces the value but keeps the
// original insertion position, so combine order stays stable under override.
type CardSet struct {
	keys  []string
	cards map[string]*Card
}

// NewCardSet creates an empty card set.
func NewCardSet() *CardSet {
	return &CardSet{cards: make(map[string]*Card)}
}

// Put adds a card keyed by its header, replacing any existing card in place.
func (s *CardSet) Put(c *Card) {
	if _, ok := s.cards[c.Header]; !ok {
		s.keys = append(s.keys, c.Header)
	}
	s.cards[c.Header] = c
}

// Get returns the card for a header keyword.
func (s *CardSet) Get(header string) (*Card, bool) {
	c, ok := s.cards[header]
	return c, ok
}

// Len returns the number of cards in the set.
func (s *CardSet) Len() int {
	return len(s.keys)
}

// Cards returns all cards in insertion order.
func (s *CardSet) Cards() []*Card {
	out := make([]*Card, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.cards[k])
	}
	return out
}

// Merge puts every card from other into s, later values winning.
func (s *CardSet) Merge(other *CardSet) {
	for _, c := range other.Cards() {
		s.Put(c)
	}
}

// GroupSet is an insertion-ordered map of group id to description. Override
// semantics match CardSet.
type GroupSet struct {
	keys   []string
	groups map[string]string
}

// NewGroupSet creates an empty group set.
func NewGroupSet() *GroupSet {
	return &GroupSet{groups: make(map[string]string)}
}

// Put records a group description, replacing any existing one in place.
func (s *GroupSet) Put(id, description string) {
	if _, ok := s.groups[id]; !ok {
		s.keys = append(s.keys, id)
	}
	s.groups[id] = description
}

// Get returns the description for a group id, "" when absent.
func (s *GroupSet) Get(id string) string {
	return s.groups[id]
}

// Len returns the number of groups in the set.
func (s *GroupSet) Len() int {
	return len(s.keys)
}

// IDs returns all group ids in insertion order.
func (s *GroupSet) IDs() []string {
	return append([]string(nil), s.keys...)
}

// Merge puts every group from other into s, later values winning.
func (s *GroupSet) Merge(other *GroupSet) {
	for _, id := range other.IDs() {
		s.Put(id, other.Get(id))
	}
}

// HeaderVersion returns the declared value of the distinguished HEADVER
// keyword, or "Unknown" when the set has none.
func HeaderVersion(cards *CardSet) string {
	if c, ok := cards.Get("HEADVER"); ok {
		return c.Spec
	}
	return "Unknown"
}
