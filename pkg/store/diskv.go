// Package store persists the checklist collection. The whole state
// document lives under a single key; persistence is a side effect of
// mutations and its failure never rolls one back.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"github.com/rmks1216/mobicheck/pkg/checklist"
)

// stateKey is the single document key holding {checklists, activeId}.
const stateKey = "checklists"

// Persistence is the durable-storage contract for checklist state.
type Persistence interface {
	Load(ctx context.Context) (*checklist.State, error)
	Save(st *checklist.State) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
// A nil config loads the default one.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Load reads the persisted state document and normalizes it into the
// canonical shape. A missing document is a fresh install, not an error.
func (p *persistence) Load(_ context.Context) (*checklist.State, error) {
	if !p.d.Has(stateKey) {
		return checklist.NewState(), nil
	}
	data, err := p.d.Read(stateKey)
	if err != nil {
		return nil, fmt.Errorf("store: read state: %w", err)
	}
	st := checklist.NewState()
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("store: decode state: %w", err)
	}
	st.Normalize()
	return st, nil
}

// Save writes the full state document.
func (p *persistence) Save(st *checklist.State) error {
	if st == nil {
		return errors.New("store: nil state")
	}
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("store: encode state: %w", err)
	}
	if err := p.d.Write(stateKey, data); err != nil {
		return fmt.Errorf("store: write state: %w", err)
	}
	return nil
}
