package interfaces

import domaintypes "remotesms/internal/domain/types"

// CredentialStore persists the shared-secret record under a fixed namespace.
// LoadCredential reports ok=false when nothing has been set up yet.
type CredentialStore interface {
	SaveCredential(credential domaintypes.Credential) error
	LoadCredential() (domaintypes.Credential, bool, error)
}

// GrantStore persists which capabilities are currently granted.
type GrantStore interface {
	SaveGrants(grants []domaintypes.Capability) error
	LoadGrants() ([]domaintypes.Capability, error)
}
