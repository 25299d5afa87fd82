package capability

import (
	"slices"
	"sync"

	"remotesms/internal/domain"
	domaintypes "remotesms/internal/domain/types"
)

// requirement lists the capabilities any one of which admits a command, and
// the reply sent when none is granted.
type requirement struct {
	anyOf  []domain.Capability
	denied string
}

var requirements = map[domain.CommandKind]requirement{
	domaintypes.CommandGetCallLogs: {
		anyOf:  []domain.Capability{domaintypes.CapabilityCallLog},
		denied: "Permission READ_CALL_LOG missing",
	},
	domaintypes.CommandGetSms: {
		anyOf:  []domain.Capability{domaintypes.CapabilitySMS},
		denied: "Permission READ_SMS missing",
	},
	domaintypes.CommandGetLocation: {
		anyOf:  []domain.Capability{domaintypes.CapabilityFineLocation, domaintypes.CapabilityCoarseLocation},
		denied: "Permission LOCATION missing",
	},
}

// DeniedText returns the fixed permission-denied reply for kind, or "" when
// kind is ungated.
func DeniedText(kind domain.CommandKind) string {
	return requirements[kind].denied
}

// Service is the capability gate plus grant administration.
type Service struct {
	store domain.GrantStore
	mu    sync.Mutex
}

// New constructs a capability Service over store.
func New(store domain.GrantStore) *Service {
	return &Service{store: store}
}

// Granted reports whether c is currently granted. A store read failure counts
// as not granted.
func (s *Service) Granted(c domain.Capability) bool {
	grants, err := s.store.LoadGrants()
	if err != nil {
		return false
	}
	return slices.Contains(grants, c)
}

// Check returns a KindPermission error when kind needs a capability that is
// not granted.
func (s *Service) Check(kind domain.CommandKind) error {
	req, gated := requirements[kind]
	if !gated {
		return nil
	}
	for _, c := range req.anyOf {
		if s.Granted(c) {
			return nil
		}
	}
	return domaintypes.NewError(domaintypes.KindPermission, req.denied)
}

// Grant adds c to the granted set.
func (s *Service) Grant(c domain.Capability) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	grants, err := s.store.LoadGrants()
	if err != nil {
		return err
	}
	if slices.Contains(grants, c) {
		return nil
	}
	return s.store.SaveGrants(append(grants, c))
}

// Revoke removes c from the granted set.
func (s *Service) Revoke(c domain.Capability) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	grants, err := s.store.LoadGrants()
	if err != nil {
		return err
	}
	return s.store.SaveGrants(slices.DeleteFunc(grants, func(g domain.Capability) bool { return g == c }))
}

// List returns the granted capabilities.
func (s *Service) List() ([]domain.Capability, error) {
	return s.store.LoadGrants()
}

// Compile-time assertion that Service implements domain.CapabilityGate.
var _ domain.CapabilityGate = (*Service)(nil)
