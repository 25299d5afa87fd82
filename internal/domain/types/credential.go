package types

// Credential is the persisted shared-secret record.
//
// Password is compared verbatim against the token of every inbound command.
// The recovery code is only ever stored as an Argon2id hash. OTP holds the one
// pending out-of-band code, if any.
type Credential struct {
	Password     string  `json:"password"`
	RecoveryHash []byte  `json:"recovery_hash,omitempty"`
	RecoverySalt []byte  `json:"recovery_salt,omitempty"`
	OTP          string  `json:"otp,omitempty"`
	Phone        Address `json:"phone,omitempty"`
}

// Configured reports whether a password has been set.
func (c Credential) Configured() bool { return c.Password != "" }
