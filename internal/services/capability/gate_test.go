package capability_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remotesms/internal/domain"
	domaintypes "remotesms/internal/domain/types"
	"remotesms/internal/services/capability"
	"remotesms/internal/store"
)

type failingGrants struct{}

func (failingGrants) SaveGrants([]domain.Capability) error     { return errors.New("disk") }
func (failingGrants) LoadGrants() ([]domain.Capability, error) { return nil, errors.New("disk") }

func newGate(t *testing.T, granted ...domain.Capability) *capability.Service {
	t.Helper()
	svc := capability.New(store.NewGrantFileStore(t.TempDir()))
	for _, c := range granted {
		require.NoError(t, svc.Grant(c))
	}
	return svc
}

func TestCheck_UngatedCommandsAlwaysPass(t *testing.T) {
	gate := newGate(t)
	for _, k := range []domain.CommandKind{
		domaintypes.CommandGetBattery,
		domaintypes.CommandLightOn,
		domaintypes.CommandLightOff,
		domaintypes.CommandUnknown,
	} {
		assert.NoError(t, gate.Check(k), k.String())
	}
}

func TestCheck_GatedCommandsNeedGrant(t *testing.T) {
	gate := newGate(t)

	err := gate.Check(domaintypes.CommandGetCallLogs)
	require.Error(t, err)
	assert.Equal(t, domaintypes.KindPermission, domaintypes.KindOf(err))
	assert.Equal(t, "Permission READ_CALL_LOG missing", err.Error())

	err = gate.Check(domaintypes.CommandGetSms)
	assert.Equal(t, "Permission READ_SMS missing", err.Error())

	require.NoError(t, gate.Grant(domaintypes.CapabilityCallLog))
	assert.NoError(t, gate.Check(domaintypes.CommandGetCallLogs))
	assert.Error(t, gate.Check(domaintypes.CommandGetSms))
}

func TestCheck_LocationAcceptsEitherPrecision(t *testing.T) {
	assert.Error(t, newGate(t).Check(domaintypes.CommandGetLocation))
	assert.NoError(t, newGate(t, domaintypes.CapabilityCoarseLocation).Check(domaintypes.CommandGetLocation))
	assert.NoError(t, newGate(t, domaintypes.CapabilityFineLocation).Check(domaintypes.CommandGetLocation))
}

func TestCheck_StoreFailureDenies(t *testing.T) {
	gate := capability.New(failingGrants{})
	err := gate.Check(domaintypes.CommandGetSms)
	assert.Equal(t, domaintypes.KindPermission, domaintypes.KindOf(err))
	assert.False(t, gate.Granted(domaintypes.CapabilitySMS))
}

func TestGrantRevokeList(t *testing.T) {
	gate := newGate(t, domaintypes.CapabilitySMS, domaintypes.CapabilitySMS)
	got, err := gate.List()
	require.NoError(t, err)
	assert.Equal(t, []domain.Capability{domaintypes.CapabilitySMS}, got)
	assert.True(t, gate.Granted(domaintypes.CapabilitySMS))

	require.NoError(t, gate.Revoke(domaintypes.CapabilitySMS))
	assert.False(t, gate.Granted(domaintypes.CapabilitySMS))
}

func TestDeniedText(t *testing.T) {
	assert.Equal(t, "Permission LOCATION missing", capability.DeniedText(domaintypes.CommandGetLocation))
	assert.Empty(t, capability.DeniedText(domaintypes.CommandGetBattery))
}
