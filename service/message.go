package service

import (
	"fmt"
	"time"
)

// MessageSpec holds the fixed protocol constants embedded in every
// sign-in message (EIP-4361 style).
type MessageSpec struct {
	Domain    string
	Statement string
	URI       string
	Version   string
	ChainID   int
}

// DefaultMessageSpec returns the quest platform's sign-in constants.
func DefaultMessageSpec(domain, uri string) MessageSpec {
	return MessageSpec{
		Domain:    domain,
		Statement: "Sign in to the app.",
		URI:       uri,
		Version:   "1",
		ChainID:   1,
	}
}

// Build renders the sign-in message for one attempt. The result must
// reach the verify endpoint byte-identical to what the signer saw.
func (m MessageSpec) Build(address, nonce string, issuedAt time.Time) string {
	return fmt.Sprintf(
		"%s wants you to sign in with your Ethereum account:\n%s\n\n%s\n\nURI: %s\nVersion: %s\nChain ID: %d\nNonce: %s\nIssued At: %s",
		m.Domain,
		address,
		m.Statement,
		m.URI,
		m.Version,
		m.ChainID,
		nonce,
		issuedAt.UTC().Format(time.RFC3339),
	)
}
