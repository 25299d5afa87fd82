package types

// CommandKind enumerates the commands the remote channel understands.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandGetCallLogs
	CommandGetSms
	CommandGetBattery
	CommandGetLocation
	CommandLightOn
	CommandLightOff
)

// String returns a stable lower-case name, used in logs.
func (k CommandKind) String() string {
	switch k {
	case CommandGetCallLogs:
		return "get_call_logs"
	case CommandGetSms:
		return "get_sms"
	case CommandGetBattery:
		return "get_battery"
	case CommandGetLocation:
		return "get_location"
	case CommandLightOn:
		return "light_on"
	case CommandLightOff:
		return "light_off"
	default:
		return "unknown"
	}
}

// Command is a resolved command token. Raw holds the upper-cased token as
// received and is what an Unknown command echoes back.
type Command struct {
	Kind CommandKind
	Raw  string
}
