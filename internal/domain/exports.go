package domain

import (
	interfaces "remotesms/internal/domain/interfaces"
	types "remotesms/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Address          = types.Address
	DeviceState      = types.DeviceState
	Envelope         = types.Envelope
	IncomingMessage  = types.IncomingMessage
	Reply            = types.Reply
	CommandKind      = types.CommandKind
	Command          = types.Command
	Credential       = types.Credential
	Capability       = types.Capability
	CallDirection    = types.CallDirection
	CallEntry        = types.CallEntry
	SmsEntry         = types.SmsEntry
	LocationProvider = types.LocationProvider
	Fix              = types.Fix
	ErrorKind        = types.ErrorKind
	Error            = types.Error
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CredentialStore    = interfaces.CredentialStore
	GrantStore         = interfaces.GrantStore
	GatewayClient      = interfaces.GatewayClient
	BatteryReader      = interfaces.BatteryReader
	LocationSource     = interfaces.LocationSource
	CallLogReader      = interfaces.CallLogReader
	SmsInboxReader     = interfaces.SmsInboxReader
	CredentialVerifier = interfaces.CredentialVerifier
	CredentialService  = interfaces.CredentialService
	CapabilityChecker  = interfaces.CapabilityChecker
	CapabilityGate     = interfaces.CapabilityGate
	DeviceController   = interfaces.DeviceController
	ReplyTransport     = interfaces.ReplyTransport
	MessageService     = interfaces.MessageService
)
