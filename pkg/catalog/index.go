package catalog

// Index holds the precomputed relationship maps for a catalog forest.
// Built once at load time and shared read-only after that.
type Index struct {
	// Names maps id to display name, one entry per node.
	Names map[string]string
	// Descendants maps id to every id strictly below it, as a pre-order
	// consistent flattening of the subtree. Leaves map to an empty slice.
	Descendants map[string][]string
	// Ancestors maps id to the chain from nearest parent up to the root.
	// Roots map to an empty slice.
	Ancestors map[string][]string

	nodes map[string]*Node
}

// BuildIndex walks the forest in pre-order and produces the name,
// descendant, and ancestor maps. Duplicate ids overwrite earlier entries;
// supplying a well-formed forest is the caller's responsibility.
func BuildIndex(forest []Node) *Index {
	idx := &Index{
		Names:       make(map[string]string),
		Descendants: make(map[string][]string),
		Ancestors:   make(map[string][]string),
		nodes:       make(map[string]*Node),
	}
	for i := range forest {
		idx.walk(&forest[i], nil)
	}
	return idx
}

func (idx *Index) walk(n *Node, ancestors []string) {
	idx.Names[n.ID] = n.Name
	idx.Ancestors[n.ID] = ancestors
	idx.nodes[n.ID] = n

	if len(n.Children) == 0 {
		idx.Descendants[n.ID] = []string{}
		return
	}

	childAncestors := append([]string{n.ID}, ancestors...)
	ids := make([]string, 0, len(n.Children))
	for i := range n.Children {
		child := &n.Children[i]
		idx.walk(child, childAncestors)
		ids = append(ids, child.ID)
		ids = append(ids, idx.Descendants[child.ID]...)
	}
	idx.Descendants[n.ID] = ids
}

// Node resolves an id to its catalog node, or nil when unknown.
func (idx *Index) Node(id string) *Node {
	return idx.nodes[id]
}

// Name resolves an id to its display name; unknown ids fall back to the
// raw id so stale checklist rows still render something.
func (idx *Index) Name(id string) string {
	if name, ok := idx.Names[id]; ok {
		return name
	}
	return id
}

// Depth is the node's distance from its root. Unknown ids count as roots.
func (idx *Index) Depth(id string) int {
	return len(idx.Ancestors[id])
}

// IsCategory reports whether id names a node with children. Progress math
// skips category rows; they exist in checklists only for cascade rollup.
func (idx *Index) IsCategory(id string) bool {
	n := idx.nodes[id]
	return n != nil && len(n.Children) > 0
}
