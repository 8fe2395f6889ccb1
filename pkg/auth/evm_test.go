package auth

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyEIP191Signature_RoundTrip(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	message := LoginMessage("abc")
	sig, err := SignEIP191(message, func(hash []byte) ([]byte, error) {
		return crypto.Sign(hash, key)
	})
	require.NoError(t, err)

	got, err := VerifyEIP191Signature(message, sig)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), got)

	other, err := VerifyEIP191Signature(message+"x", sig)
	require.NoError(t, err)
	assert.NotEqual(t, crypto.PubkeyToAddress(key.PublicKey), other)
}

func TestVerifyEIP191Signature_Malformed(t *testing.T) {
	_, err := VerifyEIP191Signature("msg", "0xzz")
	assert.Error(t, err)

	_, err = VerifyEIP191Signature("msg", "0x"+strings.Repeat("ab", 64))
	assert.ErrorContains(t, err, "invalid signature length")
}

func TestAddresses(t *testing.T) {
	mixed := "0x52908400098527886E0F7030069857D2E4169EE7"

	assert.True(t, ValidateEVMAddress(mixed))
	assert.False(t, ValidateEVMAddress("52908400098527886E0F7030069857D2E4169EE7"))
	assert.False(t, ValidateEVMAddress("0x1234"))
	assert.False(t, ValidateEVMAddress("0xZZ908400098527886E0F7030069857D2E4169EE7"))

	assert.Equal(t, strings.ToLower(mixed), NormalizeAddress(mixed))
	assert.True(t, SameAddress(mixed, strings.ToLower(mixed)))
	assert.False(t, SameAddress(mixed, "0x0000000000000000000000000000000000000001"))
	assert.False(t, SameAddress("", ""))
}

func TestLoginMessage(t *testing.T) {
	assert.Equal(t, "Sign this message to login to X4PN: n1", LoginMessage("n1"))
}
