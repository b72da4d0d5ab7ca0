package checklist

import "github.com/google/uuid"

// DefaultName is used when a checklist is created without a name.
const DefaultName = "새 체크리스트"

// Checklist is a named, ordered collection of tracked items. Items are
// kept sorted by ascending catalog depth so ancestor rows always precede
// their descendants.
type Checklist struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`

	// LegacyMode carries the checklist-level mode from older persisted
	// shapes. Normalize folds it into per-item modes and clears it.
	LegacyMode Mode `json:"mode,omitempty"`
}

// NewChecklist creates an empty checklist with a fresh id.
func NewChecklist(name string) *Checklist {
	if name == "" {
		name = DefaultName
	}
	return &Checklist{
		ID:    uuid.NewString(),
		Name:  name,
		Items: []Item{},
	}
}

// Item returns a pointer to the item with the given id, or nil.
func (c *Checklist) Item(id string) *Item {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// Has reports whether an item with the given id is present.
func (c *Checklist) Has(id string) bool {
	return c.Item(id) != nil
}

// presentIDs returns the set of item ids currently in the list.
func (c *Checklist) presentIDs() map[string]bool {
	present := make(map[string]bool, len(c.Items))
	for i := range c.Items {
		present[c.Items[i].ID] = true
	}
	return present
}
