package checklist

// Item tracks one catalog node inside a checklist. Checked is always a
// derived value: for simple items it mirrors currentCount being 1, for
// repeat items it means currentCount reached targetCount.
type Item struct {
	ID           string `json:"id"`
	Checked      bool   `json:"checked"`
	Mode         Mode   `json:"itemMode,omitempty"`
	TargetCount  int    `json:"targetCount"`
	CurrentCount int    `json:"currentCount"`
}

// NewItem returns an unchecked simple-mode item for the given catalog id.
func NewItem(id string) Item {
	return Item{
		ID:          id,
		Mode:        ModeSimple,
		TargetCount: 1,
	}
}

// normalize clamps counts into their legal ranges, defaults missing
// fields from older persisted shapes, and re-derives Checked.
func (it *Item) normalize() {
	if !it.Mode.Valid() {
		it.Mode = ModeSimple
	}
	if it.TargetCount < 1 {
		it.TargetCount = 1
	}
	if it.CurrentCount < 0 {
		it.CurrentCount = 0
	}
	if it.CurrentCount > it.TargetCount {
		it.CurrentCount = it.TargetCount
	}
	it.Checked = it.CurrentCount >= it.TargetCount
}

// setChecked forces the checked state and aligns the counter with it
// under the item's own mode.
func (it *Item) setChecked(checked bool) {
	it.Checked = checked
	if !checked {
		it.CurrentCount = 0
		return
	}
	switch it.Mode {
	case ModeRepeat:
		it.CurrentCount = it.TargetCount
	default:
		it.CurrentCount = 1
	}
}
