package ports

// Signer proves ownership of one wallet key. Implementations must be
// deterministic: Address returns the same value across calls for the
// same key.
type Signer interface {
	// Address returns the 0x-prefixed checksummed Ethereum address.
	Address() string

	// SignText signs a human-readable message (EIP-191 personal sign)
	// and returns the 0x-prefixed 65-byte signature in hex.
	SignText(message string) (string, error)
}
