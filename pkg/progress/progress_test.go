package progress

import (
	"testing"

	"github.com/rmks1216/mobicheck/pkg/catalog"
	"github.com/rmks1216/mobicheck/pkg/checklist"
)

func testIndex() *catalog.Index {
	return catalog.BuildIndex([]catalog.Node{
		{
			ID:   "cat",
			Name: "Category",
			Children: []catalog.Node{
				{ID: "s1", Name: "Simple 1"},
				{ID: "s2", Name: "Simple 2"},
				{ID: "r1", Name: "Repeat 1"},
				{ID: "r2", Name: "Repeat 2"},
				{ID: "r3", Name: "Repeat 3"},
			},
		},
	})
}

func TestSummarySimpleOnly(t *testing.T) {
	idx := testIndex()
	s := checklist.NewState()
	c := s.Add("simple")
	s.AddItems(idx, "s1", "s2")
	s.SetCurrentCount("s1", 1)

	if got := Summary(s, idx, c.ID); got != 50 {
		t.Errorf("progress = %d, want 50", got)
	}
}

func TestSummaryRepeatOnly(t *testing.T) {
	idx := testIndex()
	s := checklist.NewState()
	c := s.Add("repeat")
	s.AddItems(idx, "r1", "r2")
	s.SetItemMode("r1", checklist.ModeRepeat)
	s.SetTargetCount("r1", 4)
	s.SetCurrentCount("r1", 1)
	s.SetItemMode("r2", checklist.ModeRepeat)
	s.SetTargetCount("r2", 6)
	s.SetCurrentCount("r2", 4)

	// Σcurrent/Σtarget = 5/10, not an average of per-item ratios.
	if got := Summary(s, idx, c.ID); got != 50 {
		t.Errorf("progress = %d, want 50", got)
	}
}

func TestSummaryMixedWeighted(t *testing.T) {
	idx := testIndex()
	s := checklist.NewState()
	c := s.Add("mixed")
	s.AddItems(idx, "s1", "r1", "r2", "r3")
	s.SetCurrentCount("s1", 1) // 1 simple item, 100%
	for _, id := range []string{"r1", "r2", "r3"} {
		s.SetItemMode(id, checklist.ModeRepeat)
		s.SetTargetCount(id, 4)
		s.SetCurrentCount(id, 2) // repeat population at 50%
	}

	// 0.25*100 + 0.75*50 = 62.5, rounds to 63.
	if got := Summary(s, idx, c.ID); got != 63 {
		t.Errorf("progress = %d, want 63", got)
	}
	if got := Classify(s, idx, c.ID); got != ClassMixed {
		t.Errorf("classification = %q, want mixed", got)
	}
}

func TestSummaryExcludesCategories(t *testing.T) {
	idx := testIndex()
	s := checklist.NewState()
	c := s.Add("with-category")
	s.AddItems(idx, "cat", "s1", "s2")
	s.ToggleCascade(idx, "cat")

	// cat is checked too, but only s1/s2 count: 2/2.
	if got := Summary(s, idx, c.ID); got != 100 {
		t.Errorf("progress = %d, want 100", got)
	}
	info := Describe(s, idx, c.ID)
	if info.TotalItems != 2 || info.CompletedItems != 2 {
		t.Errorf("info = %+v, want category row excluded", info)
	}
}

func TestSummaryEmpty(t *testing.T) {
	idx := testIndex()
	s := checklist.NewState()
	c := s.Add("empty")

	if got := Summary(s, idx, c.ID); got != 0 {
		t.Errorf("progress = %d, want 0 for empty checklist", got)
	}
	// A checklist holding only category rows has zero qualifying items.
	s.AddItems(idx, "cat")
	if got := Summary(s, idx, c.ID); got != 0 {
		t.Errorf("progress = %d, want 0 with only category rows", got)
	}
	info := Describe(s, idx, c.ID)
	if info.Description != "항목 없음" {
		t.Errorf("description = %q, want no-items message", info.Description)
	}

	if got := Summary(s, idx, "missing"); got != 0 {
		t.Errorf("unknown checklist progress = %d, want 0", got)
	}
}

func TestSummaryIdempotent(t *testing.T) {
	idx := testIndex()
	s := checklist.NewState()
	c := s.Add("stable")
	s.AddItems(idx, "s1", "s2")
	s.SetCurrentCount("s1", 1)

	first := Summary(s, idx, c.ID)
	second := Summary(s, idx, c.ID)
	if first != second {
		t.Errorf("summary changed without mutation: %d then %d", first, second)
	}
}

func TestDescribe(t *testing.T) {
	idx := testIndex()
	s := checklist.NewState()
	c := s.Add("quest")
	s.AddItems(idx, "s1", "s2")
	s.SetCurrentCount("s1", 1)

	info := Describe(s, idx, c.ID)
	if info.Mode != ClassSimple || info.Progress != 50 {
		t.Errorf("info = %+v, want simple at 50", info)
	}
	if info.Description != "1/2 항목 완료" {
		t.Errorf("description = %q", info.Description)
	}

	s.SetItemMode("s2", checklist.ModeRepeat)
	s.SetTargetCount("s2", 3)
	s.SetCurrentCount("s2", 2)
	info = Describe(s, idx, c.ID)
	if info.Mode != ClassMixed {
		t.Errorf("mode = %q, want mixed", info.Mode)
	}
	if info.TotalCurrent != 2 || info.TotalTarget != 3 {
		t.Errorf("info = %+v, want repeat sums 2/3", info)
	}
}

func TestDescribeRepeat(t *testing.T) {
	idx := testIndex()
	s := checklist.NewState()
	c := s.Add("grind")
	s.AddItems(idx, "r1")
	s.SetItemMode("r1", checklist.ModeRepeat)
	s.SetTargetCount("r1", 5)
	s.SetCurrentCount("r1", 5)

	info := Describe(s, idx, c.ID)
	if info.Mode != ClassRepeat || info.Progress != 100 {
		t.Errorf("info = %+v, want repeat at 100", info)
	}
	if info.Description != "5/5 회 완료 (1/1 항목 달성)" {
		t.Errorf("description = %q", info.Description)
	}
}

func TestModeStats(t *testing.T) {
	idx := testIndex()
	s := checklist.NewState()
	c := s.Add("dash")
	s.AddItems(idx, "s1", "s2", "r1")
	s.SetCurrentCount("s1", 1)
	s.SetItemMode("r1", checklist.ModeRepeat)
	s.SetTargetCount("r1", 4)
	s.SetCurrentCount("r1", 3)

	stats := ModeStats(s, idx, c.ID)
	if stats.Simple.Count != 2 || stats.Simple.Completed != 1 || stats.Simple.Progress != 50 {
		t.Errorf("simple stats = %+v", stats.Simple)
	}
	if stats.Repeat.Count != 1 || stats.Repeat.Completed != 0 || stats.Repeat.Progress != 75 {
		t.Errorf("repeat stats = %+v", stats.Repeat)
	}

	if got := ModeStats(s, idx, "missing"); got != (Stats{}) {
		t.Errorf("unknown checklist stats = %+v, want zero", got)
	}
}
