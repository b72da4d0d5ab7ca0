package catalog

import (
	"reflect"
	"strings"
	"testing"
)

func testForest() []Node {
	return []Node{
		{
			ID:   "A",
			Name: "Alpha",
			Children: []Node{
				{
					ID:   "B",
					Name: "Beta",
					Children: []Node{
						{ID: "C", Name: "Gamma"},
						{ID: "D", Name: "Delta"},
					},
				},
			},
		},
	}
}

func TestBuildIndexMaps(t *testing.T) {
	idx := BuildIndex(testForest())

	if got := idx.Ancestors["C"]; !reflect.DeepEqual(got, []string{"B", "A"}) {
		t.Errorf("Ancestors[C] = %v, want [B A]", got)
	}
	if got := idx.Descendants["A"]; !reflect.DeepEqual(got, []string{"B", "C", "D"}) {
		t.Errorf("Descendants[A] = %v, want [B C D]", got)
	}
	if got := idx.Descendants["C"]; len(got) != 0 {
		t.Errorf("Descendants[C] = %v, want empty", got)
	}
	if got := idx.Ancestors["A"]; len(got) != 0 {
		t.Errorf("Ancestors[A] = %v, want empty", got)
	}
	if idx.Names["B"] != "Beta" {
		t.Errorf("Names[B] = %q, want Beta", idx.Names["B"])
	}
}

func TestIndexInverse(t *testing.T) {
	idx := BuildIndex(Sample())

	for d, ancestors := range idx.Ancestors {
		for _, a := range ancestors {
			if !contains(idx.Descendants[a], d) {
				t.Errorf("%s lists ancestor %s, but Descendants[%s] misses %s", d, a, a, d)
			}
		}
	}
	for n, descendants := range idx.Descendants {
		for _, d := range descendants {
			if !contains(idx.Ancestors[d], n) {
				t.Errorf("%s lists descendant %s, but Ancestors[%s] misses %s", n, d, d, n)
			}
		}
	}
}

func TestIndexLookups(t *testing.T) {
	idx := BuildIndex(testForest())

	if idx.Node("B") == nil || idx.Node("B").Name != "Beta" {
		t.Error("Node(B) should resolve")
	}
	if idx.Node("missing") != nil {
		t.Error("Node(missing) should be nil")
	}
	if got := idx.Name("missing"); got != "missing" {
		t.Errorf("Name(missing) = %q, want raw id", got)
	}
	if got := idx.Depth("D"); got != 2 {
		t.Errorf("Depth(D) = %d, want 2", got)
	}
	if got := idx.Depth("missing"); got != 0 {
		t.Errorf("Depth(missing) = %d, want 0", got)
	}
	if !idx.IsCategory("B") {
		t.Error("IsCategory(B) should be true")
	}
	if idx.IsCategory("C") || idx.IsCategory("missing") {
		t.Error("leaves and unknown ids are not categories")
	}
}

func TestDecode(t *testing.T) {
	in := `[{"id":"x","name":"X","children":[{"id":"y","name":"Y"}]}]`
	forest, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(forest) != 1 || forest[0].ID != "x" || len(forest[0].Children) != 1 {
		t.Errorf("unexpected forest: %+v", forest)
	}
	if forest[0].Leaf() {
		t.Error("x has a child, not a leaf")
	}

	if _, err := Decode(strings.NewReader("{broken")); err == nil {
		t.Error("Decode should fail on malformed JSON")
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
