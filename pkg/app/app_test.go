package app

import (
	"context"
	"errors"
	"testing"

	"github.com/rmks1216/mobicheck/pkg/catalog"
	"github.com/rmks1216/mobicheck/pkg/checklist"
	"github.com/rmks1216/mobicheck/pkg/store"
)

type memoryPersistence struct {
	saves    int
	failSave bool
	last     *checklist.State
}

func (m *memoryPersistence) Load(_ context.Context) (*checklist.State, error) {
	if m.last == nil {
		return checklist.NewState(), nil
	}
	return m.last, nil
}

func (m *memoryPersistence) Save(st *checklist.State) error {
	m.saves++
	if m.failSave {
		return errors.New("disk full")
	}
	m.last = st
	return nil
}

func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func newTestService(mp *memoryPersistence) *Service {
	return &Service{
		State:       checklist.NewState(),
		Index:       catalog.BuildIndex(catalog.Sample()),
		Persistence: mp,
	}
}

func TestMutationsPersist(t *testing.T) {
	mp := &memoryPersistence{}
	s := newTestService(mp)

	c := s.NewChecklist("daily")
	s.AddSubtree("daily-dungeon")
	s.Toggle("daily-dungeon-gold")

	if mp.saves != 3 {
		t.Errorf("saves = %d, want one per mutation", mp.saves)
	}
	got := s.State.Find(c.ID)
	if !got.Has("daily-dungeon") || !got.Has("daily-dungeon-gold") || !got.Has("daily-dungeon-exp") {
		t.Errorf("items = %+v, want full subtree added", got.Items)
	}
	if !got.Item("daily-dungeon-gold").Checked {
		t.Error("toggled leaf should be checked")
	}
}

func TestPersistFailureDoesNotRollBack(t *testing.T) {
	mp := &memoryPersistence{failSave: true}
	s := newTestService(mp)

	c := s.NewChecklist("daily")
	s.AddItems("daily-login")
	s.Toggle("daily-login")

	// Every mutation stuck in memory despite the failing store.
	got := s.State.Find(c.ID)
	if got == nil || !got.Item("daily-login").Checked {
		t.Error("in-memory mutation must survive a persistence failure")
	}
}

func TestAddSubtreeLeafBringsAncestors(t *testing.T) {
	s := newTestService(&memoryPersistence{})
	c := s.NewChecklist("path")
	s.AddSubtree("growth-gear-weapon")

	want := []string{"growth", "growth-gear", "growth-gear-weapon"}
	if len(c.Items) != len(want) {
		t.Fatalf("items = %+v, want root-to-leaf path", c.Items)
	}
	for i, id := range want {
		if c.Items[i].ID != id {
			t.Errorf("items[%d] = %s, want %s", i, c.Items[i].ID, id)
		}
	}
}

func TestResolve(t *testing.T) {
	s := newTestService(&memoryPersistence{})
	c := s.NewChecklist("daily")

	if got, err := s.Resolve(c.ID); err != nil || got != c {
		t.Errorf("Resolve by id = %v, %v", got, err)
	}
	if got, err := s.Resolve("daily"); err != nil || got != c {
		t.Errorf("Resolve by name = %v, %v", got, err)
	}
	if _, err := s.Resolve("nope"); err == nil {
		t.Error("Resolve of unknown ref should error")
	}
}

func TestActive(t *testing.T) {
	s := newTestService(&memoryPersistence{})
	if _, err := s.Active(); err == nil {
		t.Error("Active with no checklists should error")
	}
	c := s.NewChecklist("daily")
	if got, err := s.Active(); err != nil || got != c {
		t.Errorf("Active = %v, %v", got, err)
	}
}

func TestProgressThroughService(t *testing.T) {
	s := newTestService(&memoryPersistence{})
	c := s.NewChecklist("daily")
	s.AddItems("daily-login", "daily-arena")
	s.Toggle("daily-login")

	if got := s.Progress(c.ID); got != 50 {
		t.Errorf("progress = %d, want 50", got)
	}
	info := s.ProgressInfo(c.ID)
	if info.CompletedItems != 1 || info.TotalItems != 2 {
		t.Errorf("info = %+v", info)
	}
	stats := s.ModeStats(c.ID)
	if stats.Simple.Count != 2 || stats.Repeat.Count != 0 {
		t.Errorf("stats = %+v", stats)
	}
}
