package device

import (
	"sync"

	"remotesms/internal/domain"
)

// State is the light on/off cell with change notification.
type State struct {
	mu      sync.Mutex
	current domain.DeviceState
	subs    map[int]chan domain.DeviceState
	nextID  int
}

// New returns a State starting at initial.
func New(initial domain.DeviceState) *State {
	return &State{current: initial, subs: make(map[int]chan domain.DeviceState)}
}

// Snapshot returns the current state.
func (s *State) Snapshot() domain.DeviceState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetLight sets the light and notifies subscribers when the value changed.
func (s *State) SetLight(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.LightOn == on {
		return
	}
	s.current.LightOn = on
	for _, ch := range s.subs {
		publish(ch, s.current)
	}
}

// Subscribe returns a channel that receives the state after each change and
// a cancel func that closes it.
func (s *State) Subscribe() (<-chan domain.DeviceState, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan domain.DeviceState, 1)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// publish replaces any undelivered value with v.
func publish(ch chan domain.DeviceState, v domain.DeviceState) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}

// Compile-time assertion that State implements domain.DeviceController.
var _ domain.DeviceController = (*State)(nil)
