// Package attestation verifies user-signed settlement claims.
//
// A client may attach a signature over (session id, claimed cumulative cost, claimed cumulative
// duration) to a settle request. The claim is bound to a verifying contract and chain id so a
// signature produced for one deployment cannot be replayed against another.
package attestation

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
)

// CostDecimals is the fixed-point scale used to encode claimed cost as uint256.
const CostDecimals = 18

const signatureLength = 65

var (
	ErrInvalidClaim       = errors.New("invalid attestation claim")
	ErrMalformedSignature = errors.New("malformed attestation signature")
)

// Domain separates attestations between deployments.
type Domain struct {
	VerifyingContract common.Address
	ChainID           *big.Int
}

// Claim is what the user signs.
type Claim struct {
	SessionID       int64
	ClaimedCost     decimal.Decimal
	ClaimedDuration int64
}

// Digest returns keccak256(abi.encodePacked(contract, chainId, sessionId, cost*1e18, duration)).
func Digest(domain Domain, claim Claim) (common.Hash, error) {
	if claim.SessionID <= 0 {
		return common.Hash{}, fmt.Errorf("%w: session id must be positive", ErrInvalidClaim)
	}
	if claim.ClaimedCost.IsNegative() {
		return common.Hash{}, fmt.Errorf("%w: negative cost", ErrInvalidClaim)
	}
	if claim.ClaimedDuration < 0 {
		return common.Hash{}, fmt.Errorf("%w: negative duration", ErrInvalidClaim)
	}

	scaled := claim.ClaimedCost.Shift(CostDecimals)
	if !scaled.IsInteger() {
		return common.Hash{}, fmt.Errorf("%w: cost has more than %d decimals", ErrInvalidClaim, CostDecimals)
	}
	scaledCost := scaled.BigInt()
	if scaledCost.BitLen() > 256 {
		return common.Hash{}, fmt.Errorf("%w: cost exceeds uint256", ErrInvalidClaim)
	}

	chainID := domain.ChainID
	if chainID == nil {
		chainID = new(big.Int)
	}

	packed := make([]byte, 0, common.AddressLength+4*32)
	packed = append(packed, domain.VerifyingContract.Bytes()...)
	packed = append(packed, math.U256Bytes(new(big.Int).Set(chainID))...)
	packed = append(packed, math.U256Bytes(big.NewInt(claim.SessionID))...)
	packed = append(packed, math.U256Bytes(scaledCost)...)
	packed = append(packed, math.U256Bytes(big.NewInt(claim.ClaimedDuration))...)

	return crypto.Keccak256Hash(packed), nil
}

// Recover returns the address that produced signature over the claim.
// The signature is an EIP-191 personal_sign over the 32-byte digest.
func Recover(domain Domain, claim Claim, signature string) (common.Address, error) {
	digest, err := Digest(domain, claim)
	if err != nil {
		return common.Address{}, err
	}

	sig, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrMalformedSignature, err)
	}
	if len(sig) != signatureLength {
		return common.Address{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedSignature, signatureLength, len(sig))
	}
	if sig[64] >= 27 {
		sig[64] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash(digest.Bytes()), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrMalformedSignature, err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// Verify reports whether signature over the claim recovers to expectedSigner.
// Malformed signatures verify as false with a non-nil error; invalid claims return an error.
func Verify(domain Domain, claim Claim, signature string, expectedSigner common.Address) (bool, error) {
	recovered, err := Recover(domain, claim, signature)
	if err != nil {
		return false, err
	}
	return recovered == expectedSigner, nil
}

// Sign produces a 0x-prefixed signature over the claim. Used by wallet tooling and tests.
func Sign(domain Domain, claim Claim, key *ecdsa.PrivateKey) (string, error) {
	digest, err := Digest(domain, claim)
	if err != nil {
		return "", err
	}
	sig, err := crypto.Sign(accounts.TextHash(digest.Bytes()), key)
	if err != nil {
		return "", fmt.Errorf("sign attestation: %w", err)
	}
	sig[64] += 27
	return "0x" + hex.EncodeToString(sig), nil
}
