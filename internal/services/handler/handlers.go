package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"remotesms/internal/domain"
	domaintypes "remotesms/internal/domain/types"
)

// MaxEntries caps the call-log and inbox summaries.
const MaxEntries = 10

const (
	entryTimeLayout    = "Jan 02, 15:04"
	locationTimeLayout = "2006-01-02 15:04:05"
)

// Fixed reply texts.
const (
	LightOnText          = "Light turned ON"
	LightOffText         = "Light turned OFF"
	NoCallLogsText       = "No call logs found"
	NoSmsText            = "No SMS found"
	LocationUnavailable  = "Location: Not available (enable GPS)"
	LocationDeniedText   = "Location permission not granted"
	CallLogDeniedText    = "Call log permission not granted"
	SmsDeniedText        = "SMS permission not granted"
	batteryErrorPrefix   = "Battery error"
	locationErrorPrefix  = "Error getting location"
	callLogErrorPrefix   = "Call log error"
	smsErrorPrefix       = "SMS error"
	deviceMissingMessage = "Device state unavailable"
)

var errNoAccessor = errors.New("not available on this device")

// Battery reports the battery capacity.
func Battery(_ context.Context, env Env) (string, error) {
	if env.Battery == nil {
		return "", domaintypes.WrapError(domaintypes.KindNotAvailable, batteryErrorPrefix, errNoAccessor)
	}
	pct, err := env.Battery.Capacity()
	if err != nil {
		return "", domaintypes.WrapError(domaintypes.KindNotAvailable, batteryErrorPrefix, err)
	}
	return fmt.Sprintf("Battery: %d%%", pct), nil
}

// Location reports the last known fix, preferring the high-accuracy
// provider and falling back to the coarse one.
func Location(_ context.Context, env Env) (string, error) {
	fine := granted(env, domaintypes.CapabilityFineLocation)
	coarse := granted(env, domaintypes.CapabilityCoarseLocation)
	if !fine && !coarse {
		return "", domaintypes.NewError(domaintypes.KindPermission, LocationDeniedText)
	}
	if env.Location == nil {
		return "", domaintypes.WrapError(domaintypes.KindInternal, locationErrorPrefix, errNoAccessor)
	}

	providers := []domain.LocationProvider{domaintypes.ProviderNetwork}
	if fine {
		providers = []domain.LocationProvider{domaintypes.ProviderGPS, domaintypes.ProviderNetwork}
	}

	// A provider that answers without a fix outranks one that failed: the
	// device simply has no location yet.
	var lastErr error
	answered := false
	for _, p := range providers {
		fix, ok, err := env.Location.LastKnown(p)
		if err != nil {
			lastErr = err
			continue
		}
		if ok {
			return fmt.Sprintf("Location: %.6f, %.6f\nLast update: %s",
				fix.Latitude, fix.Longitude, fix.At.In(env.zone()).Format(locationTimeLayout)), nil
		}
		answered = true
	}
	if lastErr != nil && !answered {
		return "", domaintypes.WrapError(domaintypes.KindInternal, locationErrorPrefix, lastErr)
	}
	if lastErr != nil {
		env.logger().Warn().Err(lastErr).Msg("location provider failed")
	}
	return "", domaintypes.NewError(domaintypes.KindNotAvailable, LocationUnavailable)
}

// CallLogs summarises the most recent calls.
func CallLogs(ctx context.Context, env Env) (string, error) {
	if env.Grants != nil && !env.Grants.Granted(domaintypes.CapabilityCallLog) {
		return "", domaintypes.NewError(domaintypes.KindPermission, CallLogDeniedText)
	}
	if env.Calls == nil {
		return "", domaintypes.NewError(domaintypes.KindNotAvailable, NoCallLogsText)
	}
	calls, err := env.Calls.RecentCalls(ctx, MaxEntries)
	if err != nil {
		return "", domaintypes.WrapError(domaintypes.KindInternal, callLogErrorPrefix, err)
	}
	if len(calls) == 0 {
		return "", domaintypes.NewError(domaintypes.KindNotAvailable, NoCallLogsText)
	}

	var b strings.Builder
	b.WriteString("Recent calls:\n")
	for _, c := range calls[:min(len(calls), MaxEntries)] {
		fmt.Fprintf(&b, "%s: %s\n%s (%d sec)\n\n",
			c.Direction, c.Number, c.At.In(env.zone()).Format(entryTimeLayout), int64(c.Duration/time.Second))
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// SmsInbox summarises the most recent received messages.
func SmsInbox(ctx context.Context, env Env) (string, error) {
	if env.Grants != nil && !env.Grants.Granted(domaintypes.CapabilitySMS) {
		return "", domaintypes.NewError(domaintypes.KindPermission, SmsDeniedText)
	}
	if env.Inbox == nil {
		return "", domaintypes.NewError(domaintypes.KindNotAvailable, NoSmsText)
	}
	msgs, err := env.Inbox.RecentInbox(ctx, MaxEntries)
	if err != nil {
		return "", domaintypes.WrapError(domaintypes.KindInternal, smsErrorPrefix, err)
	}
	if len(msgs) == 0 {
		return "", domaintypes.NewError(domaintypes.KindNotAvailable, NoSmsText)
	}

	var b strings.Builder
	b.WriteString("Recent SMS:\n")
	for _, m := range msgs[:min(len(msgs), MaxEntries)] {
		fmt.Fprintf(&b, "From: %s\n%s\n%s\n\n", m.Address, m.At.In(env.zone()).Format(entryTimeLayout), m.Body)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// LightOn switches the light on.
func LightOn(_ context.Context, env Env) (string, error) {
	return setLight(env, true, LightOnText)
}

// LightOff switches the light off.
func LightOff(_ context.Context, env Env) (string, error) {
	return setLight(env, false, LightOffText)
}

func setLight(env Env, on bool, text string) (string, error) {
	if env.Device == nil {
		return "", domaintypes.NewError(domaintypes.KindInternal, deviceMissingMessage)
	}
	env.Device.SetLight(on)
	return text, nil
}

func granted(env Env, c domain.Capability) bool {
	return env.Grants != nil && env.Grants.Granted(c)
}
