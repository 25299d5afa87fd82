package types

import (
	"fmt"
	"strings"
)

// Capability is an OS-mediated permission gating one data source.
type Capability string

const (
	CapabilityCallLog        Capability = "call_log"
	CapabilitySMS            Capability = "sms"
	CapabilityFineLocation   Capability = "fine_location"
	CapabilityCoarseLocation Capability = "coarse_location"
)

// AllCapabilities lists every known capability in display order.
func AllCapabilities() []Capability {
	return []Capability{
		CapabilityCallLog,
		CapabilitySMS,
		CapabilityFineLocation,
		CapabilityCoarseLocation,
	}
}

// ParseCapability accepts a capability name in any case, with '-' or '_'.
func ParseCapability(s string) (Capability, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, c := range AllCapabilities() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown capability %q", s)
}
