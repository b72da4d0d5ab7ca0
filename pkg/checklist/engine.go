package checklist

import (
	"sort"

	"github.com/rmks1216/mobicheck/pkg/catalog"
)

// The item state engine. Every operation targets the active checklist
// and treats a missing active checklist or an unknown item id as a
// benign no-op: double clicks and stale UI references are expected
// inputs, not errors.

// AddItems appends a fresh unchecked simple item for every id not
// already present, then re-sorts the whole list by ascending catalog
// depth so ancestor rows always precede descendant rows. Ids missing
// from the index sort as depth 0.
func (s *State) AddItems(idx *catalog.Index, ids ...string) {
	c := s.Active()
	if c == nil || len(ids) == 0 {
		return
	}
	present := c.presentIDs()
	for _, id := range ids {
		if present[id] {
			continue
		}
		present[id] = true
		c.Items = append(c.Items, NewItem(id))
	}
	sortByDepth(c.Items, idx)
}

// AddSubtree adds the node itself plus its entire descendant subtree.
// When the node is a leaf its ancestor chain is added too, keeping the
// checklist a connected root-to-node path.
func (s *State) AddSubtree(idx *catalog.Index, id string) {
	ids := []string{id}
	if idx != nil {
		if descendants := idx.Descendants[id]; len(descendants) > 0 {
			ids = append(ids, descendants...)
		} else {
			ids = append(ids, idx.Ancestors[id]...)
		}
	}
	s.AddItems(idx, ids...)
}

// RemoveItem deletes the item and, when an index is supplied, every
// present descendant of it as well. Ancestor rows are left in place even
// if now childless.
func (s *State) RemoveItem(idx *catalog.Index, id string) {
	c := s.Active()
	if c == nil {
		return
	}
	doomed := map[string]bool{id: true}
	if idx != nil {
		for _, d := range idx.Descendants[id] {
			doomed[d] = true
		}
	}
	kept := c.Items[:0]
	for _, it := range c.Items {
		if !doomed[it.ID] {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

// SetItemMode switches an item between simple and repeat semantics.
// Switching always forgets prior completion: checked and currentCount
// reset, and the target collapses to 1 when returning to simple.
func (s *State) SetItemMode(id string, mode Mode) {
	it := s.activeItem(id)
	if it == nil || !mode.Valid() {
		return
	}
	it.Mode = mode
	it.Checked = false
	it.CurrentCount = 0
	if mode == ModeSimple {
		it.TargetCount = 1
	} else if it.TargetCount < 1 {
		it.TargetCount = 1
	}
}

// SetTargetCount clamps the target to at least 1, pulls the current
// count down under the new target, and re-derives checked.
func (s *State) SetTargetCount(id string, n int) {
	it := s.activeItem(id)
	if it == nil {
		return
	}
	if n < 1 {
		n = 1
	}
	it.TargetCount = n
	if it.CurrentCount > n {
		it.CurrentCount = n
	}
	it.Checked = it.CurrentCount >= it.TargetCount
}

// SetCurrentCount clamps the count into [0, target] and re-derives
// checked.
func (s *State) SetCurrentCount(id string, n int) {
	it := s.activeItem(id)
	if it == nil {
		return
	}
	if n < 0 {
		n = 0
	}
	if n > it.TargetCount {
		n = it.TargetCount
	}
	it.CurrentCount = n
	it.Checked = it.CurrentCount >= it.TargetCount
}

// IncrementCount bumps the counter by one, stopping at the target.
func (s *State) IncrementCount(id string) {
	if it := s.activeItem(id); it != nil {
		s.SetCurrentCount(id, it.CurrentCount+1)
	}
}

// DecrementCount lowers the counter by one, stopping at zero.
func (s *State) DecrementCount(id string) {
	if it := s.activeItem(id); it != nil {
		s.SetCurrentCount(id, it.CurrentCount-1)
	}
}

// ToggleCascade flips the clicked item and cascades: every present
// descendant takes the same new state, then every present ancestor is
// recomputed as "all of my present descendants are checked". Rows absent
// from the checklist are never touched or added; each item's own mode
// governs how its counter follows the checked state.
func (s *State) ToggleCascade(idx *catalog.Index, id string) {
	c := s.Active()
	if c == nil {
		return
	}
	clicked := c.Item(id)
	if clicked == nil {
		return
	}
	nowChecked := !clicked.Checked

	clicked.setChecked(nowChecked)
	var descendants, ancestors []string
	if idx != nil {
		descendants = idx.Descendants[id]
		ancestors = idx.Ancestors[id]
	}
	for _, d := range descendants {
		if it := c.Item(d); it != nil {
			it.setChecked(nowChecked)
		}
	}

	present := c.presentIDs()
	for _, parentID := range ancestors {
		parent := c.Item(parentID)
		if parent == nil {
			continue
		}
		allChecked := false
		for _, childID := range idx.Descendants[parentID] {
			if !present[childID] {
				continue
			}
			child := c.Item(childID)
			if child == nil || !child.Checked {
				allChecked = false
				break
			}
			allChecked = true
		}
		parent.setChecked(allChecked)
	}
}

// UncheckAll resets every item of the given checklist back to unchecked
// with a zero counter, preserving targets and modes.
func (s *State) UncheckAll(checklistID string) {
	c := s.Find(checklistID)
	if c == nil {
		return
	}
	for i := range c.Items {
		it := &c.Items[i]
		it.Checked = false
		it.CurrentCount = 0
	}
}

func (s *State) activeItem(id string) *Item {
	c := s.Active()
	if c == nil {
		return nil
	}
	return c.Item(id)
}

func sortByDepth(items []Item, idx *catalog.Index) {
	depth := func(id string) int {
		if idx == nil {
			return 0
		}
		return idx.Depth(id)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return depth(items[i].ID) < depth(items[j].ID)
	})
}
