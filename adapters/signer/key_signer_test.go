package signer

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layer-3/questrun/internal/eth"
)

const (
	testKey     = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestFromHex(t *testing.T) {
	s, err := FromHex(testKey)
	require.NoError(t, err)
	assert.Equal(t, testAddress, s.Address())

	_, err = FromHex("zz")
	assert.Error(t, err)
}

func TestAddressStable(t *testing.T) {
	s, err := FromHex(testKey)
	require.NoError(t, err)

	first := s.Address()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Address())
	}
}

func TestSignText(t *testing.T) {
	s, err := FromHex(testKey)
	require.NoError(t, err)

	message := "sign-in challenge"
	sigHex, err := s.SignText(message)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sigHex, "0x"))

	sig, err := hexutil.Decode(sigHex)
	require.NoError(t, err)
	require.Len(t, sig, 65)

	recovered, err := eth.RecoverAddress(message, sig)
	require.NoError(t, err)
	assert.Equal(t, testAddress, recovered.Hex())
}
