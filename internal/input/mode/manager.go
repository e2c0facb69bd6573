package mode

import "sync"

// Manager holds the current mode and notifies listeners when it changes.
type Manager struct {
	mu sync.RWMutex

	// current is the active mode.
	current Mode

	// previous is the mode before the current one.
	previous Mode

	// callbacks are notified on mode changes.
	callbacks []ModeChangeCallback
}

// ModeChangeCallback is called when the mode changes.
type ModeChangeCallback func(from, to Mode)

// NewManager creates a new mode manager in Normal mode.
func NewManager() *Manager {
	return &Manager{current: Normal{}}
}

// Current returns the current mode.
func (m *Manager) Current() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// CurrentName returns the name of the current mode.
func (m *Manager) CurrentName() string {
	return m.Current().Name()
}

// Previous returns the previous mode, or nil before the first switch.
func (m *Manager) Previous() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.previous
}

// Switch makes next the current mode.
// Switching replaces any state held by the old mode, including when both
// are the same kind of mode.
func (m *Manager) Switch(next Mode) {
	m.mu.Lock()
	old := m.current
	m.previous = old
	m.current = next

	// Copy callbacks to call outside of lock
	callbacks := make([]ModeChangeCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, cb := range callbacks {
		if cb != nil {
			cb(old, next)
		}
	}
}

// Update replaces the current mode's state without notifying listeners.
// It is used to change a Search mode's query or selected match.
func (m *Manager) Update(next Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = next
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ModeChangeCallback) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		// Remove callback by setting to nil (preserves indices)
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}

// IsMode returns true if the current mode matches the given name.
func (m *Manager) IsMode(name string) bool {
	return m.CurrentName() == name
}

// IsAnyMode returns true if the current mode matches any of the given names.
func (m *Manager) IsAnyMode(names ...string) bool {
	current := m.CurrentName()
	for _, name := range names {
		if current == name {
			return true
		}
	}
	return false
}
