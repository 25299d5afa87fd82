package types

// Address identifies an SMS endpoint: a phone number or a gateway mailbox.
type Address string

// String returns the string form of the address.
func (a Address) String() string { return string(a) }

// DeviceState is the observable actuator state of the device.
type DeviceState struct {
	LightOn bool `json:"light_on"`
}
