package interfaces

import (
	"context"

	domaintypes "remotesms/internal/domain/types"
)

// BatteryReader reports the current battery capacity in percent.
type BatteryReader interface {
	Capacity() (int, error)
}

// LocationSource returns the last known fix of a provider. ok is false when
// the provider has no fix.
type LocationSource interface {
	LastKnown(provider domaintypes.LocationProvider) (fix domaintypes.Fix, ok bool, err error)
}

// CallLogReader reads the device call log, newest first.
type CallLogReader interface {
	RecentCalls(ctx context.Context, limit int) ([]domaintypes.CallEntry, error)
}

// SmsInboxReader reads the device SMS inbox, newest first.
type SmsInboxReader interface {
	RecentInbox(ctx context.Context, limit int) ([]domaintypes.SmsEntry, error)
}
