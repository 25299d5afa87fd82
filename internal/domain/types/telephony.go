package types

import "time"

// CallDirection uses the platform call-log type codes.
type CallDirection int

const (
	CallIncoming CallDirection = 1
	CallOutgoing CallDirection = 2
	CallMissed   CallDirection = 3
)

// String returns the label used in call-log replies.
func (d CallDirection) String() string {
	switch d {
	case CallIncoming:
		return "Incoming"
	case CallOutgoing:
		return "Outgoing"
	case CallMissed:
		return "Missed"
	default:
		return "Unknown"
	}
}

// CallEntry is one row of the device call log.
type CallEntry struct {
	Number    string
	Direction CallDirection
	At        time.Time
	Duration  time.Duration
}

// SmsEntry is one row of the device SMS inbox.
type SmsEntry struct {
	Address string
	Body    string
	At      time.Time
}

// LocationProvider names a position source.
type LocationProvider string

const (
	// ProviderGPS is the high-accuracy provider.
	ProviderGPS LocationProvider = "gps"
	// ProviderNetwork is the coarse provider.
	ProviderNetwork LocationProvider = "network"
)

// Fix is a last-known position.
type Fix struct {
	Latitude  float64          `json:"lat"`
	Longitude float64          `json:"lon"`
	At        time.Time        `json:"time"`
	Provider  LocationProvider `json:"provider"`
}
