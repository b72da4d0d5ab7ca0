package checklist

// State owns the checklist collection and the active-checklist pointer.
// It is created by the composition root and passed by reference to
// whichever layer needs it; there is no package-level instance.
type State struct {
	Checklists []*Checklist `json:"checklists"`
	ActiveID   string       `json:"activeId"`
}

// NewState returns an empty collection with no active checklist.
func NewState() *State {
	return &State{Checklists: []*Checklist{}}
}

// Add creates a checklist, makes it active, and returns it. An empty
// name falls back to DefaultName.
func (s *State) Add(name string) *Checklist {
	c := NewChecklist(name)
	s.Checklists = append(s.Checklists, c)
	s.ActiveID = c.ID
	return c
}

// SetActive moves the active pointer. The id is not validated; pointing
// at a checklist that does not exist simply makes Active resolve to nil.
func (s *State) SetActive(id string) {
	s.ActiveID = id
}

// Find returns the checklist with the given id, or nil.
func (s *State) Find(id string) *Checklist {
	for _, c := range s.Checklists {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// FindByName returns the first checklist with the given name, or nil.
// Names are not unique; first match wins.
func (s *State) FindByName(name string) *Checklist {
	for _, c := range s.Checklists {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Active resolves the active checklist, or nil when none is selected or
// the pointer is stale.
func (s *State) Active() *Checklist {
	return s.Find(s.ActiveID)
}

// Rename changes a checklist's display name in place. Unknown ids are a
// no-op; names need not be unique.
func (s *State) Rename(id, name string) {
	if c := s.Find(id); c != nil {
		c.Name = name
	}
}

// Delete removes a checklist. When the active checklist is deleted the
// first remaining one becomes active, or none when the collection is
// empty.
func (s *State) Delete(id string) {
	kept := s.Checklists[:0]
	removed := false
	for _, c := range s.Checklists {
		if c.ID == id {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	if !removed {
		return
	}
	s.Checklists = kept
	if s.ActiveID == id {
		if len(s.Checklists) > 0 {
			s.ActiveID = s.Checklists[0].ID
		} else {
			s.ActiveID = ""
		}
	}
}

// Clear empties a checklist's item list without deleting the checklist.
func (s *State) Clear(id string) {
	if c := s.Find(id); c != nil {
		c.Items = []Item{}
	}
}

// Normalize upgrades any persisted shape into the current canonical one:
// missing item modes default to simple, a legacy checklist-level repeat
// mode is folded into each item, counts are clamped, and Checked is
// re-derived. Load paths call this once so the rest of the engine never
// has to default-at-read.
func (s *State) Normalize() {
	if s.Checklists == nil {
		s.Checklists = []*Checklist{}
	}
	for _, c := range s.Checklists {
		if c.Items == nil {
			c.Items = []Item{}
		}
		for i := range c.Items {
			it := &c.Items[i]
			if !it.Mode.Valid() && c.LegacyMode == ModeRepeat {
				it.Mode = ModeRepeat
			}
			it.normalize()
		}
		c.LegacyMode = ""
	}
	if s.ActiveID != "" && s.Find(s.ActiveID) == nil {
		// Stale active pointers stay benign but a missing checklist on
		// load means the persisted doc was truncated; fall back to the
		// first checklist like Delete does.
		if len(s.Checklists) > 0 {
			s.ActiveID = s.Checklists[0].ID
		} else {
			s.ActiveID = ""
		}
	}
}
