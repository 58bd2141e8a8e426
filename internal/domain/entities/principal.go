package entities

// CredentialScheme tags which credential authenticated a request.
type CredentialScheme string

const (
	SchemeAPIKey CredentialScheme = "api_key"
	SchemeBearer CredentialScheme = "bearer"
)

// PresentedCredentials is the tagged set of credentials a request may
// carry. Empty strings mean "not presented".
type PresentedCredentials struct {
	APIKey      string
	BearerToken string
}

// Principal is the resolved identity plus trust context for a single
// request. It is built per request from a user snapshot (roles included)
// and discarded afterwards; it is never persisted.
type Principal struct {
	User   *User
	Scheme CredentialScheme
}
