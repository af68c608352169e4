package auth

import "crypto/subtle"

// Identity describes the principal a valid credential resolves to.
// The service runs with a single shared secret, so every authenticated
// caller maps to the same identity.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResult is the outcome of a credential check.
type AuthResult struct {
	OK       bool
	Identity Identity
}

// CredentialChecker validates a presented credential against the
// configured shared secret.
type CredentialChecker interface {
	Check(presented string) AuthResult
}

type credentialChecker struct {
	secret   string
	identity Identity
}

func NewCredentialChecker(secret string) CredentialChecker {
	return &credentialChecker{
		secret: secret,
		identity: Identity{
			Name:  "test",
			Email: "test@test.com",
		},
	}
}

// Check compares in constant time so the secret cannot be probed
// byte by byte through response timing.
func (cc *credentialChecker) Check(presented string) AuthResult {
	if presented == "" {
		return AuthResult{}
	}
	if subtle.ConstantTimeCompare([]byte(presented), []byte(cc.secret)) != 1 {
		return AuthResult{}
	}
	return AuthResult{OK: true, Identity: cc.identity}
}
