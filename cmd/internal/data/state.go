package data

import "sync"

// State holds the attributes of realized resources, keyed by resource address and then attribute name.
// It is safe for concurrent use.
type State struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

func NewState() *State {
	return &State{values: map[string]map[string]string{}}
}

// Set records the attributes of a realized resource.
func (s *State) Set(address string, attributes map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make(map[string]string, len(attributes))
	for k, v := range attributes {
		copied[k] = v
	}
	s.values[address] = copied
}

// Get returns a single attribute of a realized resource.
func (s *State) Get(address string, attribute string) (string, bool) {
	if s == nil {
		return "", false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	attributes, ok := s.values[address]
	if !ok {
		return "", false
	}

	value, ok := attributes[attribute]
	return value, ok
}

// IsRealized returns true if the resource has been recorded.
func (s *State) IsRealized(address string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[address]
	return ok
}

// Len returns the number of realized resources.
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
