// Package progress derives completion percentages and summaries from
// checklist state. Everything here is computed on read; nothing is
// stored.
package progress

import (
	"fmt"
	"math"

	"github.com/rmks1216/mobicheck/pkg/catalog"
	"github.com/rmks1216/mobicheck/pkg/checklist"
)

// Classification describes which counting semantics a checklist's items
// use overall.
type Classification string

const (
	ClassSimple Classification = "simple"
	ClassRepeat Classification = "repeat"
	ClassMixed  Classification = "mixed"
)

// Info is the human-facing progress summary for one checklist.
type Info struct {
	Mode           Classification `json:"mode"`
	Progress       int            `json:"progress"`
	TotalItems     int            `json:"totalItems"`
	CompletedItems int            `json:"completedItems"`
	TotalCurrent   int            `json:"totalCurrent,omitempty"`
	TotalTarget    int            `json:"totalTarget,omitempty"`
	Description    string         `json:"description"`
}

// ModeStat is the per-mode breakdown for dashboards that render simple
// and repeat bars side by side.
type ModeStat struct {
	Count     int `json:"count"`
	Completed int `json:"completed"`
	Progress  int `json:"progress"`
}

// Stats holds both sub-population breakdowns.
type Stats struct {
	Simple ModeStat `json:"simple"`
	Repeat ModeStat `json:"repeat"`
}

// qualifying returns the checklist's trackable items: category rows are
// present only to carry cascade rollup and never count toward progress.
func qualifying(c *checklist.Checklist, idx *catalog.Index) []checklist.Item {
	out := make([]checklist.Item, 0, len(c.Items))
	for _, it := range c.Items {
		if idx != nil && idx.IsCategory(it.ID) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func split(items []checklist.Item) (simple, repeat []checklist.Item) {
	for _, it := range items {
		if it.Mode == checklist.ModeRepeat {
			repeat = append(repeat, it)
		} else {
			simple = append(simple, it)
		}
	}
	return simple, repeat
}

func completed(items []checklist.Item) int {
	n := 0
	for _, it := range items {
		if it.Checked {
			n++
		}
	}
	return n
}

func countSums(items []checklist.Item) (current, target int) {
	for _, it := range items {
		current += it.CurrentCount
		target += it.TargetCount
	}
	return current, target
}

// simplePercent is completed/total in item units.
func simplePercent(items []checklist.Item) float64 {
	if len(items) == 0 {
		return 0
	}
	return float64(completed(items)) / float64(len(items)) * 100
}

// repeatPercent is Σcurrent/Σtarget in repetition units.
func repeatPercent(items []checklist.Item) float64 {
	current, target := countSums(items)
	if target == 0 {
		return 0
	}
	return float64(current) / float64(target) * 100
}

// Summary returns the checklist's overall percent in [0,100]. Simple and
// repeat sub-populations measure in incommensurable units (items versus
// repetitions), so a mixed checklist combines the two percentages with
// each population weighted by its share of the item count. Zero
// qualifying items is 0, never a division error.
func Summary(st *checklist.State, idx *catalog.Index, checklistID string) int {
	c := st.Find(checklistID)
	if c == nil {
		return 0
	}
	items := qualifying(c, idx)
	if len(items) == 0 {
		return 0
	}
	simple, repeat := split(items)
	total := float64(len(items))
	weighted := simplePercent(simple)*float64(len(simple))/total +
		repeatPercent(repeat)*float64(len(repeat))/total
	return int(math.Round(weighted))
}

// Classify reports which semantics the checklist's qualifying items use.
// An empty checklist classifies as simple.
func Classify(st *checklist.State, idx *catalog.Index, checklistID string) Classification {
	c := st.Find(checklistID)
	if c == nil {
		return ClassSimple
	}
	simple, repeat := split(qualifying(c, idx))
	switch {
	case len(simple) > 0 && len(repeat) > 0:
		return ClassMixed
	case len(repeat) > 0:
		return ClassRepeat
	default:
		return ClassSimple
	}
}

// Describe builds the Info summary for one checklist. Unknown checklist
// ids return a zero-valued Info rather than an error.
func Describe(st *checklist.State, idx *catalog.Index, checklistID string) Info {
	info := Info{Mode: ClassSimple, Description: "항목 없음"}
	c := st.Find(checklistID)
	if c == nil {
		return info
	}
	items := qualifying(c, idx)
	if len(items) == 0 {
		return info
	}

	info.Mode = Classify(st, idx, checklistID)
	info.Progress = Summary(st, idx, checklistID)
	info.TotalItems = len(items)
	info.CompletedItems = completed(items)

	_, repeat := split(items)
	switch info.Mode {
	case ClassSimple:
		info.Description = fmt.Sprintf("%d/%d 항목 완료", info.CompletedItems, info.TotalItems)
	case ClassRepeat:
		info.TotalCurrent, info.TotalTarget = countSums(repeat)
		info.Description = fmt.Sprintf("%d/%d 회 완료 (%d/%d 항목 달성)",
			info.TotalCurrent, info.TotalTarget, info.CompletedItems, info.TotalItems)
	case ClassMixed:
		info.TotalCurrent, info.TotalTarget = countSums(repeat)
		info.Description = fmt.Sprintf("%d/%d 항목 완료 · %d/%d 회 완료",
			info.CompletedItems, info.TotalItems, info.TotalCurrent, info.TotalTarget)
	}
	return info
}

// ModeStats computes independent simple and repeat breakdowns.
func ModeStats(st *checklist.State, idx *catalog.Index, checklistID string) Stats {
	c := st.Find(checklistID)
	if c == nil {
		return Stats{}
	}
	simple, repeat := split(qualifying(c, idx))
	return Stats{
		Simple: ModeStat{
			Count:     len(simple),
			Completed: completed(simple),
			Progress:  int(math.Round(simplePercent(simple))),
		},
		Repeat: ModeStat{
			Count:     len(repeat),
			Completed: completed(repeat),
			Progress:  int(math.Round(repeatPercent(repeat))),
		},
	}
}
