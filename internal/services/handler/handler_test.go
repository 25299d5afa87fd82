package handler_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remotesms/internal/domain"
	domaintypes "remotesms/internal/domain/types"
	"remotesms/internal/services/device"
	"remotesms/internal/services/handler"
)

type fakeBattery struct {
	pct int
	err error
}

func (b fakeBattery) Capacity() (int, error) { return b.pct, b.err }

type fakeLocation map[domain.LocationProvider]domain.Fix

func (l fakeLocation) LastKnown(p domain.LocationProvider) (domain.Fix, bool, error) {
	fix, ok := l[p]
	return fix, ok, nil
}

// brokenGPS fails the GPS provider and has no network fix.
type brokenGPS struct{}

func (brokenGPS) LastKnown(p domain.LocationProvider) (domain.Fix, bool, error) {
	if p == domaintypes.ProviderGPS {
		return domain.Fix{}, false, errors.New("gps hardware fault")
	}
	return domain.Fix{}, false, nil
}

type fakeCalls struct {
	entries []domain.CallEntry
	err     error
	limit   int
}

func (c *fakeCalls) RecentCalls(_ context.Context, limit int) ([]domain.CallEntry, error) {
	c.limit = limit
	return c.entries, c.err
}

type fakeInbox []domain.SmsEntry

func (f fakeInbox) RecentInbox(context.Context, int) ([]domain.SmsEntry, error) { return f, nil }

type grants map[domain.Capability]bool

func (g grants) Granted(c domain.Capability) bool { return g[c] }

func allGrants() grants {
	g := grants{}
	for _, c := range domaintypes.AllCapabilities() {
		g[c] = true
	}
	return g
}

func TestResolve_AliasesCaseAndMarker(t *testing.T) {
	r := handler.NewDefault()

	cases := map[string]domain.CommandKind{
		"GET_LOGS":      domaintypes.CommandGetCallLogs,
		"get_calllogs":  domaintypes.CommandGetCallLogs,
		"#GET_SMS":      domaintypes.CommandGetSms,
		"Get_SmsLog":    domaintypes.CommandGetSms,
		"GET_SMSLOGS":   domaintypes.CommandGetSms,
		"get_battery":   domaintypes.CommandGetBattery,
		"GET_GPS":       domaintypes.CommandGetLocation,
		"#get_location": domaintypes.CommandGetLocation,
		"light_on":      domaintypes.CommandLightOn,
		"LIGHT_OFF":     domaintypes.CommandLightOff,
	}
	for token, want := range cases {
		assert.Equal(t, want, r.Resolve(token).Kind, token)
	}

	cmd := r.Resolve("foo")
	assert.Equal(t, domaintypes.CommandUnknown, cmd.Kind)
	assert.Equal(t, "FOO", cmd.Raw)
}

func TestInvoke_UnknownEchoesToken(t *testing.T) {
	r := handler.NewDefault()
	_, err := r.Invoke(context.Background(), r.Resolve("FOO"), handler.Env{})
	require.Error(t, err)
	assert.Equal(t, domaintypes.KindUnknownCommand, domaintypes.KindOf(err))
	assert.Equal(t, "Unknown command: FOO", err.Error())
}

func TestInvoke_UnknownSuggestsNearKeyword(t *testing.T) {
	r := handler.NewDefault()
	_, err := r.Invoke(context.Background(), r.Resolve("GET_BATERY"), handler.Env{})
	require.Error(t, err)
	assert.Equal(t, "Unknown command: GET_BATERY (did you mean GET_BATTERY?)", err.Error())

	kw, ok := r.Suggest("#light_of")
	assert.True(t, ok)
	assert.Equal(t, "LIGHT_OFF", kw)

	_, ok = r.Suggest("REBOOT")
	assert.False(t, ok)
}

func TestInvoke_RecoversPanic(t *testing.T) {
	r := handler.NewRegistry()
	r.Register(domaintypes.CommandGetBattery, func(context.Context, handler.Env) (string, error) {
		panic("boom")
	}, "GET_BATTERY")

	out, err := r.Invoke(context.Background(), r.Resolve("GET_BATTERY"), handler.Env{})
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, domaintypes.KindInternal, domaintypes.KindOf(err))
}

func TestKeywords(t *testing.T) {
	kws := handler.NewDefault().Keywords()
	assert.Contains(t, kws, "GET_BATTERY")
	assert.Contains(t, kws, "LIGHT_OFF")
	assert.Len(t, kws, 10)
}

func TestBattery(t *testing.T) {
	out, err := handler.Battery(context.Background(), handler.Env{Battery: fakeBattery{pct: 57}})
	require.NoError(t, err)
	assert.Equal(t, "Battery: 57%", out)

	_, err = handler.Battery(context.Background(), handler.Env{Battery: fakeBattery{err: errors.New("no supply")}})
	require.Error(t, err)
	assert.Equal(t, "Battery error: no supply", err.Error())
}

func TestLocation(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 30, 5, 0, time.UTC)
	src := fakeLocation{
		domaintypes.ProviderGPS:     {Latitude: 1.5, Longitude: -2.25, At: at, Provider: domaintypes.ProviderGPS},
		domaintypes.ProviderNetwork: {Latitude: 10, Longitude: 20, At: at, Provider: domaintypes.ProviderNetwork},
	}
	env := handler.Env{Location: src, Grants: allGrants(), Zone: time.UTC}

	out, err := handler.Location(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, "Location: 1.500000, -2.250000\nLast update: 2024-03-01 09:30:05", out)

	env.Grants = grants{domaintypes.CapabilityCoarseLocation: true}
	out, err = handler.Location(context.Background(), env)
	require.NoError(t, err)
	assert.Contains(t, out, "10.000000, 20.000000")

	env.Grants = grants{domaintypes.CapabilityFineLocation: true}
	env.Location = fakeLocation{domaintypes.ProviderNetwork: src[domaintypes.ProviderNetwork]}
	out, err = handler.Location(context.Background(), env)
	require.NoError(t, err, "falls back to the network provider")
	assert.Contains(t, out, "10.000000")
}

func TestLocation_DeniedIsNotUnavailable(t *testing.T) {
	_, denied := handler.Location(context.Background(), handler.Env{Location: fakeLocation{}, Grants: grants{}})
	require.Error(t, denied)
	assert.Equal(t, domaintypes.KindPermission, domaintypes.KindOf(denied))

	_, missing := handler.Location(context.Background(), handler.Env{Location: fakeLocation{}, Grants: allGrants()})
	require.Error(t, missing)
	assert.Equal(t, domaintypes.KindNotAvailable, domaintypes.KindOf(missing))
	assert.Equal(t, handler.LocationUnavailable, missing.Error())
	assert.NotEqual(t, denied.Error(), missing.Error())
}

func TestCallLogs(t *testing.T) {
	calls := &fakeCalls{entries: []domain.CallEntry{
		{Number: "+15550001", Direction: domaintypes.CallMissed, At: time.Date(2024, 5, 2, 14, 5, 0, 0, time.UTC)},
		{Number: "+15550002", Direction: domaintypes.CallOutgoing, At: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), Duration: 42 * time.Second},
	}}
	env := handler.Env{Calls: calls, Grants: allGrants(), Zone: time.UTC}

	out, err := handler.CallLogs(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, handler.MaxEntries, calls.limit)
	assert.Equal(t,
		"Recent calls:\nMissed: +15550001\nMay 02, 14:05 (0 sec)\n\nOutgoing: +15550002\nMay 01, 08:00 (42 sec)",
		out)

	_, err = handler.CallLogs(context.Background(), handler.Env{Calls: &fakeCalls{}, Grants: allGrants()})
	assert.Equal(t, handler.NoCallLogsText, err.Error())

	_, err = handler.CallLogs(context.Background(), handler.Env{Calls: calls, Grants: grants{}})
	assert.Equal(t, domaintypes.KindPermission, domaintypes.KindOf(err))
}

func TestCallLogs_CapsEntries(t *testing.T) {
	entries := make([]domain.CallEntry, 25)
	for i := range entries {
		entries[i] = domain.CallEntry{Number: "x", Direction: domaintypes.CallIncoming}
	}
	out, err := handler.CallLogs(context.Background(), handler.Env{Calls: &fakeCalls{entries: entries}, Grants: allGrants()})
	require.NoError(t, err)
	assert.Equal(t, handler.MaxEntries, strings.Count(out, "Incoming: x"))
}

func TestSmsInbox(t *testing.T) {
	inbox := fakeInbox{{Address: "+1555", Body: "see you", At: time.Date(2024, 1, 9, 23, 59, 0, 0, time.UTC)}}
	out, err := handler.SmsInbox(context.Background(), handler.Env{Inbox: inbox, Grants: allGrants(), Zone: time.UTC})
	require.NoError(t, err)
	assert.Equal(t, "Recent SMS:\nFrom: +1555\nJan 09, 23:59\nsee you", out)

	_, err = handler.SmsInbox(context.Background(), handler.Env{Inbox: fakeInbox{}, Grants: allGrants()})
	assert.Equal(t, handler.NoSmsText, err.Error())
}

func TestLight(t *testing.T) {
	st := device.New(domain.DeviceState{})
	env := handler.Env{Device: st}

	out, err := handler.LightOn(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, "Light turned ON", out)
	assert.True(t, st.Snapshot().LightOn)

	out, err = handler.LightOff(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, "Light turned OFF", out)
	assert.False(t, st.Snapshot().LightOn)
}

func TestLocation_ProviderErrorWithoutFixIsUnavailable(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	env := handler.Env{Location: brokenGPS{}, Grants: allGrants(), Log: &log}

	_, err := handler.Location(context.Background(), env)
	require.Error(t, err)
	assert.Equal(t, domaintypes.KindNotAvailable, domaintypes.KindOf(err))
	assert.Equal(t, handler.LocationUnavailable, err.Error())
	assert.Contains(t, buf.String(), "gps hardware fault")

	env.Grants = grants{domaintypes.CapabilityFineLocation: true}
	env.Location = offlineLocation{}
	_, err = handler.Location(context.Background(), env)
	require.Error(t, err)
	assert.Equal(t, domaintypes.KindInternal, domaintypes.KindOf(err), "every provider failed")
}

type offlineLocation struct{}

func (offlineLocation) LastKnown(domain.LocationProvider) (domain.Fix, bool, error) {
	return domain.Fix{}, false, errors.New("provider offline")
}
