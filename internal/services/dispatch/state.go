package dispatch

// State is a step of the per-message state machine.
type State int

const (
	Received State = iota
	FormatChecked
	Authenticated
	CapabilityChecked
	Executed
	FormatRejected
	AuthRejected
	CapabilityRejected
	Replied
)

func (s State) String() string {
	switch s {
	case Received:
		return "received"
	case FormatChecked:
		return "format_checked"
	case Authenticated:
		return "authenticated"
	case CapabilityChecked:
		return "capability_checked"
	case Executed:
		return "executed"
	case FormatRejected:
		return "format_rejected"
	case AuthRejected:
		return "auth_rejected"
	case CapabilityRejected:
		return "capability_rejected"
	case Replied:
		return "replied"
	default:
		return "invalid"
	}
}

// Rejected reports whether s is an early-exit state.
func (s State) Rejected() bool {
	return s == FormatRejected || s == AuthRejected || s == CapabilityRejected
}
