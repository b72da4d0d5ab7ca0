// Package printers renders catalog trees, checklists, and progress to
// the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/rmks1216/mobicheck/pkg/catalog"
	"github.com/rmks1216/mobicheck/pkg/checklist"
	"github.com/rmks1216/mobicheck/pkg/glyph"
	"github.com/rmks1216/mobicheck/pkg/progress"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)
	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// Catalog prints the forest as an indented tree. When a checklist is
// supplied, rows it tracks get their live mark instead of the plain
// category/leaf glyph.
func (pp *PrettyPrint) Catalog(idx *catalog.Index, forest []catalog.Node, c *checklist.Checklist) {
	for i := range forest {
		pp.printNode(idx, &forest[i], c, 0)
	}
}

func (pp *PrettyPrint) printNode(idx *catalog.Index, n *catalog.Node, c *checklist.Checklist, depth int) {
	indent := strings.Repeat("  ", depth)
	mark := markForNode(idx, n, c)

	line := color.New()
	faint := color.New(color.Faint)
	if c != nil && c.Has(n.ID) {
		switch mark {
		case glyph.Done:
			line = color.New(color.FgGreen)
		case glyph.Partial:
			line = color.New(color.FgYellow)
		}
	}

	_, _ = line.Printf("%s%s %s", indent, mark, n.Name)
	if pp.ShowID {
		_, _ = faint.Printf("  (%s)", n.ID)
	}
	fmt.Println()

	for i := range n.Children {
		pp.printNode(idx, &n.Children[i], c, depth+1)
	}
}

// Checklist prints one checklist as a table, indented by catalog depth.
func (pp *PrettyPrint) Checklist(idx *catalog.Index, c *checklist.Checklist) {
	if c == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" no active checklist")
		return
	}
	pp.TitleWithCount(c.Name, len(c.Items))
	if len(c.Items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	if pp.ShowID {
		table.AddRow("", "ITEM", "COUNT", "ID")
	} else {
		table.AddRow("", "ITEM", "COUNT")
	}
	for i := range c.Items {
		it := &c.Items[i]
		indent := strings.Repeat("  ", idx.Depth(it.ID))
		name := indent + idx.Name(it.ID)
		count := ""
		if it.Mode == checklist.ModeRepeat {
			count = fmt.Sprintf("%s %d/%d", glyph.Counter, it.CurrentCount, it.TargetCount)
		}
		if pp.ShowID {
			table.AddRow(markForItem(idx, c, it).String(), name, count, it.ID)
		} else {
			table.AddRow(markForItem(idx, c, it).String(), name, count)
		}
	}
	fmt.Println(table)
}

// Checklists prints the collection overview with progress percentages.
func (pp *PrettyPrint) Checklists(st *checklist.State, idx *catalog.Index) {
	if len(st.Checklists) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" no checklists")
		return
	}
	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("", "NAME", "PROGRESS", "ITEMS", "ID")
	for _, c := range st.Checklists {
		active := " "
		if c.ID == st.ActiveID {
			active = "*"
		}
		pct := progress.Summary(st, idx, c.ID)
		table.AddRow(active, c.Name, fmt.Sprintf("%3d%%", pct), len(c.Items), c.ID)
	}
	fmt.Println(table)
}

// ProgressBar renders the summary line with a bar, e.g.
// ████████░░░░░░░░ 50% · 1/2 항목 완료
func (pp *PrettyPrint) ProgressBar(info progress.Info) {
	const cells = 20
	filled := info.Progress * cells / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", cells-filled)

	b := color.New(color.FgCyan)
	f := color.New(color.Faint)
	_, _ = b.Print(bar)
	fmt.Printf(" %d%% ", info.Progress)
	_, _ = f.Printf("· %s\n", info.Description)
}

// ModeStats prints the per-mode breakdown side by side.
func (pp *PrettyPrint) ModeStats(stats progress.Stats) {
	table := uitable.New()
	table.AddRow("MODE", "ITEMS", "DONE", "PROGRESS")
	table.AddRow("simple", stats.Simple.Count, stats.Simple.Completed, fmt.Sprintf("%d%%", stats.Simple.Progress))
	table.AddRow("repeat", stats.Repeat.Count, stats.Repeat.Completed, fmt.Sprintf("%d%%", stats.Repeat.Progress))
	fmt.Println(table)
}

// markForNode picks a glyph for a catalog row, reflecting checklist
// state when the node is tracked.
func markForNode(idx *catalog.Index, n *catalog.Node, c *checklist.Checklist) glyph.Mark {
	if c == nil || !c.Has(n.ID) {
		if n.Leaf() {
			return glyph.Open
		}
		return glyph.Category
	}
	return markForItem(idx, c, c.Item(n.ID))
}

// markForItem derives the display mark. The "partially done" state is
// computed on the fly from present descendants and never stored.
func markForItem(idx *catalog.Index, c *checklist.Checklist, it *checklist.Item) glyph.Mark {
	if it.Checked {
		return glyph.Done
	}
	if idx.IsCategory(it.ID) {
		checked := 0
		for _, d := range idx.Descendants[it.ID] {
			if child := c.Item(d); child != nil && child.Checked {
				checked++
			}
		}
		if checked > 0 {
			return glyph.Partial
		}
		return glyph.Category
	}
	return glyph.Open
}
