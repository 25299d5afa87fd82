package interfaces

import (
	"context"

	domaintypes "remotesms/internal/domain/types"
)

// CredentialVerifier authenticates the token of an inbound command.
type CredentialVerifier interface {
	Verify(token string) bool
}

// CredentialService owns the shared secret, the recovery code and the
// pending one-time code.
type CredentialService interface {
	CredentialVerifier
	Configured() (bool, error)
	Setup(password, recoveryCode string, phone domaintypes.Address) error
	SetPassword(password string) error
	SetRecoveryCode(code string) error
	GenerateOTP() (string, error)
	VerifyOTP(code string) bool
	VerifyRecoveryCode(code string) bool
	ResetWithRecoveryCode(code, newPassword string) error
	ResetWithOTP(code, newPassword string) error
	RegisteredPhone() (domaintypes.Address, bool, error)
}

// CapabilityChecker reports whether a single capability is granted.
type CapabilityChecker interface {
	Granted(capability domaintypes.Capability) bool
}

// CapabilityGate decides whether a command may touch the data it reads.
type CapabilityGate interface {
	CapabilityChecker
	Check(kind domaintypes.CommandKind) error
}

// DeviceController is the shared actuator state with change notification.
type DeviceController interface {
	Snapshot() domaintypes.DeviceState
	SetLight(on bool)
	Subscribe() (<-chan domaintypes.DeviceState, func())
}

// ReplyTransport delivers one logical reply as ordered segments. Delivery
// failures are reported locally and never returned.
type ReplyTransport interface {
	Deliver(ctx context.Context, to domaintypes.Address, text string) domaintypes.Reply
}

// MessageService sends and receives plain text messages over the gateway.
type MessageService interface {
	SendMessage(
		ctx context.Context,
		from domaintypes.Address,
		to domaintypes.Address,
		body string,
	) error
	ReceiveMessages(
		ctx context.Context,
		me domaintypes.Address,
		limit int,
	) ([]domaintypes.IncomingMessage, error)
}
