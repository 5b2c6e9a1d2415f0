package wizard

import "sync"

// Manager hands out one opened Flow per user.
type Manager struct {
	store   DraftStore
	creator Creator
	enrich  Enricher

	mu    sync.Mutex
	flows map[string]*Flow
}

func NewManager(store DraftStore, creator Creator, enrich Enricher) *Manager {
	return &Manager{store: store, creator: creator, enrich: enrich, flows: map[string]*Flow{}}
}

func (m *Manager) Get(userID string) *Flow {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.flows[userID]; ok {
		return f
	}
	f := NewFlow(userID, m.store, m.creator, m.enrich)
	f.Open()
	m.flows[userID] = f
	return f
}

// Drop forgets a user's in-memory flow; the next Get re-runs the mount
// logic against durable storage. Used by tests and by logout.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.flows, userID)
}
