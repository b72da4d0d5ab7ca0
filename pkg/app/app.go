// Package app wires the catalog index, checklist state, and persistence
// together so CLIs and UIs can share one service surface.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rmks1216/mobicheck/pkg/catalog"
	"github.com/rmks1216/mobicheck/pkg/checklist"
	"github.com/rmks1216/mobicheck/pkg/progress"
	"github.com/rmks1216/mobicheck/pkg/store"
)

// Service owns the in-memory state and replays every mutation into
// persistence as a fire-and-forget side effect. A persistence failure is
// reported to stderr but never blocks or rolls back the mutation.
type Service struct {
	State       *checklist.State
	Index       *catalog.Index
	Forest      []catalog.Node
	Persistence store.Persistence
}

// New loads persisted state and the catalog, builds the index, and
// returns a ready service. A nil config uses the default one; when no
// catalog file is configured the built-in sample forest is used.
func New(ctx context.Context, cfg store.Config) (*Service, error) {
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	st, err := p.Load(ctx)
	if err != nil {
		return nil, err
	}

	forest := catalog.Sample()
	if path := cfg.CatalogPath(); path != "" {
		forest, err = catalog.Load(path)
		if err != nil {
			return nil, err
		}
	}

	return &Service{
		State:       st,
		Index:       catalog.BuildIndex(forest),
		Forest:      forest,
		Persistence: p,
	}, nil
}

// persist saves the current state without awaiting success.
func (s *Service) persist() {
	if s.Persistence == nil {
		return
	}
	if err := s.Persistence.Save(s.State); err != nil {
		fmt.Fprintf(os.Stderr, "app: persist: %v\n", err)
	}
}

// NewChecklist creates a checklist and makes it active.
func (s *Service) NewChecklist(name string) *checklist.Checklist {
	c := s.State.Add(name)
	s.persist()
	return c
}

// SetActive moves the active-checklist pointer.
func (s *Service) SetActive(id string) {
	s.State.SetActive(id)
	s.persist()
}

// RenameChecklist renames in place.
func (s *Service) RenameChecklist(id, name string) {
	s.State.Rename(id, name)
	s.persist()
}

// DeleteChecklist removes a checklist. The caller confirms destructive
// actions; the core deletes unconditionally.
func (s *Service) DeleteChecklist(id string) {
	s.State.Delete(id)
	s.persist()
}

// ClearChecklist empties a checklist's items.
func (s *Service) ClearChecklist(id string) {
	s.State.Clear(id)
	s.persist()
}

// AddItems adds catalog ids to the active checklist.
func (s *Service) AddItems(ids ...string) {
	s.State.AddItems(s.Index, ids...)
	s.persist()
}

// AddSubtree adds a node with its subtree, or a leaf with its ancestor
// chain.
func (s *Service) AddSubtree(id string) {
	s.State.AddSubtree(s.Index, id)
	s.persist()
}

// RemoveItem removes an item and its present descendants.
func (s *Service) RemoveItem(id string) {
	s.State.RemoveItem(s.Index, id)
	s.persist()
}

// Toggle flips an item and cascades to present descendants and
// ancestors.
func (s *Service) Toggle(id string) {
	s.State.ToggleCascade(s.Index, id)
	s.persist()
}

// SetItemMode switches counting semantics, forgetting prior progress.
func (s *Service) SetItemMode(id string, mode checklist.Mode) {
	s.State.SetItemMode(id, mode)
	s.persist()
}

// SetTargetCount updates a repeat item's target.
func (s *Service) SetTargetCount(id string, n int) {
	s.State.SetTargetCount(id, n)
	s.persist()
}

// SetCurrentCount updates a repeat item's counter.
func (s *Service) SetCurrentCount(id string, n int) {
	s.State.SetCurrentCount(id, n)
	s.persist()
}

// IncrementCount bumps a counter by one.
func (s *Service) IncrementCount(id string) {
	s.State.IncrementCount(id)
	s.persist()
}

// DecrementCount lowers a counter by one.
func (s *Service) DecrementCount(id string) {
	s.State.DecrementCount(id)
	s.persist()
}

// UncheckAll resets every item of the checklist.
func (s *Service) UncheckAll(checklistID string) {
	s.State.UncheckAll(checklistID)
	s.persist()
}

// Progress returns the overall percent for a checklist.
func (s *Service) Progress(checklistID string) int {
	return progress.Summary(s.State, s.Index, checklistID)
}

// ProgressInfo returns the descriptive summary for a checklist.
func (s *Service) ProgressInfo(checklistID string) progress.Info {
	return progress.Describe(s.State, s.Index, checklistID)
}

// ModeStats returns the per-mode breakdown for a checklist.
func (s *Service) ModeStats(checklistID string) progress.Stats {
	return progress.ModeStats(s.State, s.Index, checklistID)
}

// Resolve finds a checklist by id or, failing that, by name.
func (s *Service) Resolve(ref string) (*checklist.Checklist, error) {
	if c := s.State.Find(ref); c != nil {
		return c, nil
	}
	if c := s.State.FindByName(ref); c != nil {
		return c, nil
	}
	return nil, fmt.Errorf("app: no checklist %q", ref)
}

// Active returns the active checklist or an error when none resolves.
func (s *Service) Active() (*checklist.Checklist, error) {
	c := s.State.Active()
	if c == nil {
		return nil, errors.New("app: no active checklist")
	}
	return c, nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}
