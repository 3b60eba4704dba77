// Package store is the single source of truth for the tracker's six entity
// collections. Every mutation runs under one mutex and is written through to the
// injected persister before the call returns.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/PavelMelnik94/my-tracker/internal/dateutil"
	"github.com/PavelMelnik94/my-tracker/internal/model"
	"github.com/PavelMelnik94/my-tracker/internal/storage"
)

const DefaultKey = "health-tracker-storage"

var ErrInvalidPayload = errors.New("invalid health data payload")

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

func WithClock(c dateutil.Clock) Option {
	return func(s *Store) { s.now = c }
}

// WithIDFunc overrides id generation for entries the store creates itself.
func WithIDFunc(fn func(time.Time) string) Option {
	return func(s *Store) { s.newID = fn }
}

type Store struct {
	mu      sync.Mutex
	data    model.HealthData
	persist storage.Persister
	key     string
	log     *slog.Logger
	now     dateutil.Clock
	newID   func(time.Time) string
	seeded  bool
	err     error
}

// Open loads the snapshot stored under the store key. A malformed snapshot is
// logged and replaced by empty collections; persister failures are returned.
func Open(p storage.Persister, opts ...Option) (*Store, error) {
	if p == nil {
		return nil, fmt.Errorf("persister is required")
	}
	s := &Store{
		persist: p,
		key:     DefaultKey,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     dateutil.SystemClock,
		newID:   dateutil.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.data.Normalize()

	raw, ok, err := p.Load(s.key)
	if err != nil {
		return nil, fmt.Errorf("load health data: %w", err)
	}
	if ok {
		data, err := decodeHealthData(raw)
		if err != nil {
			s.log.Warn("discarding unreadable health data", "key", s.key, "error", err)
		} else {
			s.data = data
		}
	}

	flag, ok, err := p.Load(s.seedKey())
	if err != nil {
		return nil, fmt.Errorf("load recipe seed flag: %w", err)
	}
	s.seeded = ok && string(flag) == "true"
	return s, nil
}

func (s *Store) Key() string { return s.key }

// Err reports the most recent persistence failure, or nil once a later write succeeds.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Snapshot returns a deep copy of all six collections.
func (s *Store) Snapshot() model.HealthData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

func (s *Store) Meals() []model.MealEntry {
	return s.Snapshot().Meals
}

func (s *Store) Supplements() []model.SupplementEntry {
	return s.Snapshot().Supplements
}

func (s *Store) Wellbeing() []model.WellbeingEntry {
	return s.Snapshot().Wellbeing
}

func (s *Store) Measurements() []model.MeasurementEntry {
	return s.Snapshot().Measurements
}

func (s *Store) BloodTests() []model.BloodTestEntry {
	return s.Snapshot().BloodTests
}

func (s *Store) Recipes() []model.Recipe {
	return s.Snapshot().Recipes
}

// ResetAllData empties every collection. The recipe seed flag survives.
func (s *Store) ResetAllData() {
	s.mutate(func(d *model.HealthData) bool {
		*d = model.HealthData{}
		d.Normalize()
		return true
	})
}

// ExportData encodes the six collections as indented JSON.
func (s *Store) ExportData() ([]byte, error) {
	data := s.Snapshot()
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode health data: %w", err)
	}
	return out, nil
}

// ImportData replaces all six collections with the decoded payload. Missing
// collections become empty. On a decode failure nothing changes.
func (s *Store) ImportData(payload []byte) error {
	data, err := decodeHealthData(payload)
	if err != nil {
		s.log.Error("failed to import data", "error", err)
		return err
	}
	s.mutate(func(d *model.HealthData) bool {
		*d = data
		return true
	})
	return nil
}

func decodeHealthData(raw []byte) (model.HealthData, error) {
	var data model.HealthData
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return data, fmt.Errorf("%w: expected a JSON object", ErrInvalidPayload)
	}
	if err := json.Unmarshal(trimmed, &data); err != nil {
		return model.HealthData{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	data.Normalize()
	return data, nil
}

// mutate applies fn under the lock and persists when fn reports a change.
func (s *Store) mutate(fn func(d *model.HealthData) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !fn(&s.data) {
		return false
	}
	s.saveLocked()
	return true
}

func (s *Store) saveLocked() {
	raw, err := json.Marshal(s.data)
	if err == nil {
		err = s.persist.Save(s.key, raw)
	}
	if err != nil {
		s.err = fmt.Errorf("persist health data: %w", err)
		s.log.Error("failed to persist health data", "key", s.key, "error", err)
		return
	}
	s.err = nil
}

func (s *Store) seedKey() string {
	return s.key + ":recipes-seeded"
}

type entity interface {
	EntityID() string
}

// indexOf returns the position of the first entry with id, or -1.
func indexOf[T entity](items []T, id string) int {
	return slices.IndexFunc(items, func(item T) bool { return item.EntityID() == id })
}

func removeFirst[T entity](items []T, id string) ([]T, bool) {
	i := indexOf(items, id)
	if i < 0 {
		return items, false
	}
	return slices.Delete(items, i, i+1), true
}
