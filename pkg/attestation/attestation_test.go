package attestation

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDomain = Domain{
	VerifyingContract: common.HexToAddress("0x00000000000000000000000000000000000a4b1e"),
	ChainID:           big.NewInt(84532),
}

func testClaim() Claim {
	return Claim{
		SessionID:       42,
		ClaimedCost:     decimal.RequireFromString("0.6"),
		ClaimedDuration: 60,
	}
}

func TestVerify_RecoversSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := crypto.PubkeyToAddress(key.PublicKey)

	sig, err := Sign(testDomain, testClaim(), key)
	require.NoError(t, err)

	ok, err := Verify(testDomain, testClaim(), sig, signer)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_RejectsOtherSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	other, err := crypto.GenerateKey()
	require.NoError(t, err)

	sig, err := Sign(testDomain, testClaim(), key)
	require.NoError(t, err)

	ok, err := Verify(testDomain, testClaim(), sig, crypto.PubkeyToAddress(other.PublicKey))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_BindsEveryField(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := crypto.PubkeyToAddress(key.PublicKey)

	sig, err := Sign(testDomain, testClaim(), key)
	require.NoError(t, err)

	tampered := map[string]func(*Domain, *Claim){
		"session":  func(_ *Domain, c *Claim) { c.SessionID = 43 },
		"cost":     func(_ *Domain, c *Claim) { c.ClaimedCost = decimal.RequireFromString("0.61") },
		"duration": func(_ *Domain, c *Claim) { c.ClaimedDuration = 61 },
		"chain":    func(d *Domain, _ *Claim) { d.ChainID = big.NewInt(1) },
		"contract": func(d *Domain, _ *Claim) { d.VerifyingContract = common.HexToAddress("0x01") },
	}

	for name, mutate := range tampered {
		t.Run(name, func(t *testing.T) {
			domain := testDomain
			claim := testClaim()
			mutate(&domain, &claim)

			ok, err := Verify(domain, claim, sig, signer)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestVerify_MalformedSignature(t *testing.T) {
	_, err := Verify(testDomain, testClaim(), "0x1234", common.Address{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedSignature))

	_, err = Verify(testDomain, testClaim(), "not-hex", common.Address{})
	assert.True(t, errors.Is(err, ErrMalformedSignature))
}

func TestDigest_InvalidClaims(t *testing.T) {
	cases := map[string]Claim{
		"zero session":    {SessionID: 0, ClaimedCost: decimal.Zero},
		"negative cost":   {SessionID: 1, ClaimedCost: decimal.NewFromInt(-1)},
		"negative time":   {SessionID: 1, ClaimedCost: decimal.Zero, ClaimedDuration: -1},
		"too many digits": {SessionID: 1, ClaimedCost: decimal.RequireFromString("0.0000000000000000001")},
		"cost overflows":  {SessionID: 1, ClaimedCost: decimal.New(1, 60)},
	}

	for name, claim := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Digest(testDomain, claim)
			assert.True(t, errors.Is(err, ErrInvalidClaim))
		})
	}
}

func TestDigest_CostUpperBound(t *testing.T) {
	maxScaled := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	claim := testClaim()
	claim.ClaimedCost = decimal.NewFromBigInt(maxScaled, -CostDecimals)
	_, err := Digest(testDomain, claim)
	require.NoError(t, err)

	claim.ClaimedCost = decimal.NewFromBigInt(new(big.Int).Add(maxScaled, big.NewInt(1)), -CostDecimals)
	_, err = Digest(testDomain, claim)
	assert.True(t, errors.Is(err, ErrInvalidClaim))
}

func TestDigest_Deterministic(t *testing.T) {
	a, err := Digest(testDomain, testClaim())
	require.NoError(t, err)
	b, err := Digest(testDomain, testClaim())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c := testClaim()
	c.ClaimedCost = decimal.RequireFromString("0.600")
	d, err := Digest(testDomain, c)
	require.NoError(t, err)
	assert.Equal(t, a, d, "trailing zeros must not change the digest")
}
