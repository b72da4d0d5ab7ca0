package tui

import "github.com/rmks1216/mobicheck/pkg/catalog"

// row is one visible line of the catalog pane.
type row struct {
	ID       string
	Name     string
	Depth    int
	Category bool
}

// flatten walks the forest and returns the rows visible under the given
// expansion state. Collapsed categories hide their whole subtree.
func flatten(forest []catalog.Node, expanded map[string]bool) []row {
	rows := make([]row, 0, len(forest))
	var walk func(nodes []catalog.Node, depth int)
	walk = func(nodes []catalog.Node, depth int) {
		for i := range nodes {
			n := &nodes[i]
			rows = append(rows, row{
				ID:       n.ID,
				Name:     n.Name,
				Depth:    depth,
				Category: !n.Leaf(),
			})
			if !n.Leaf() && expanded[n.ID] {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(forest, 0)
	return rows
}

// expandAll marks every category as expanded.
func expandAll(forest []catalog.Node, expanded map[string]bool) {
	var walk func(nodes []catalog.Node)
	walk = func(nodes []catalog.Node) {
		for i := range nodes {
			if !nodes[i].Leaf() {
				expanded[nodes[i].ID] = true
				walk(nodes[i].Children)
			}
		}
	}
	walk(forest)
}
