package auth

import (
	"encoding/base64"
	"encoding/json"
)

// AdminBundle is the reversible, non-cryptographic administrative
// credential: a base64 encoded JSON object carrying at least a role claim.
// Legacy admin consoles issue these instead of signed tokens.
type AdminBundle struct {
	Role     string `json:"role"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName,omitempty"`
}

// DecodeAdminBundle attempts to decode a bearer credential as an admin
// bundle. It never performs I/O; a false return means the credential should
// be tried as a signed user token instead.
func DecodeAdminBundle(token string) (*AdminBundle, bool) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(token)
		if err != nil {
			return nil, false
		}
	}

	var bundle AdminBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return nil, false
	}
	if bundle.Role == "" {
		return nil, false
	}
	return &bundle, true
}

// EncodeAdminBundle builds the wire form of an admin bundle. Used by tests
// and by tooling that provisions administrative credentials.
func EncodeAdminBundle(bundle *AdminBundle) (string, error) {
	raw, err := json.Marshal(bundle)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
