package signer

import (
	"crypto/ecdsa"

	"github.com/layer-3/questrun/internal/eth"
	"github.com/layer-3/questrun/ports"
)

// KeySigner is a private-key implementation of the Signer interface
type KeySigner struct {
	key     *ecdsa.PrivateKey
	address string
}

// FromHex creates a signer from a hex-encoded private key
func FromHex(hexKey string) (ports.Signer, error) {
	key, err := eth.ParseKey(hexKey)
	if err != nil {
		return nil, err
	}
	return &KeySigner{
		key:     key,
		address: eth.AddressOf(key).Hex(),
	}, nil
}

// Address returns the checksummed Ethereum address for the key
func (s *KeySigner) Address() string {
	return s.address
}

// SignText produces an EIP-191 personal signature over message
func (s *KeySigner) SignText(message string) (string, error) {
	return eth.SignTextHex(s.key, message)
}
