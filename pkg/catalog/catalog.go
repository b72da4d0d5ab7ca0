// Package catalog models the static item hierarchy and the derived
// relationship index used by the checklist engine.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Node is one entry of the externally supplied catalog forest. The forest
// is immutable once loaded; ids are assumed unique across the whole tree.
type Node struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Children []Node `json:"children,omitempty"`
}

// Leaf reports whether the node has no children.
func (n *Node) Leaf() bool {
	return len(n.Children) == 0
}

// Decode reads a catalog forest from JSON.
func Decode(r io.Reader) ([]Node, error) {
	var forest []Node
	dec := json.NewDecoder(r)
	if err := dec.Decode(&forest); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return forest, nil
}

// Load reads a catalog forest from a JSON file on disk.
func Load(path string) ([]Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
