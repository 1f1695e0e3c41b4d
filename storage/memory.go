package storage

import (
	"encoding/json"
	"sync"

	"github.com/Invisible042/sip-smart-scan/models"
)

// MemoryStore is the in-process backend used when no database is configured,
// and by the test suite. Profiles and events round-trip through JSON on the
// way in and out so callers never share memory with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string][]byte
	events   map[string][]models.DrinkEvent
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string][]byte),
		events:   make(map[string][]models.DrinkEvent),
	}
}

func (m *MemoryStore) Get(userID string) (*models.UserProfile, error) {
	m.mu.RLock()
	raw, ok := m.profiles[userID]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var p models.UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *MemoryStore) Put(userID string, profile *models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.profiles[userID] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) List(userID string) ([]models.DrinkEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.DrinkEvent, len(m.events[userID]))
	copy(out, m.events[userID])
	return out, nil
}

func (m *MemoryStore) Append(userID string, event models.DrinkEvent) error {
	m.mu.Lock()
	m.events[userID] = append(m.events[userID], event)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(userID, eventID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	evts := m.events[userID]
	for i, e := range evts {
		if e.ID == eventID {
			m.events[userID] = append(evts[:i], evts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
