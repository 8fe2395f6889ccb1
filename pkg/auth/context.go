package auth

import (
	"context"
)

type contextKey string

const (
	// ContextKeyEVMAddress is the context key for the authenticated wallet address
	ContextKeyEVMAddress contextKey = "evm_address"
	// ContextKeyClaims is the context key for the validated token claims
	ContextKeyClaims contextKey = "claims"
)

// WithEVMAddress adds the EVM address to the context
func WithEVMAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, ContextKeyEVMAddress, address)
}

// EVMAddressFromContext retrieves the EVM address from the context
func EVMAddressFromContext(ctx context.Context) (string, bool) {
	addr, ok := ctx.Value(ContextKeyEVMAddress).(string)
	return addr, ok && addr != ""
}

// WithClaims stores validated claims and their subject address on the context.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	ctx = WithEVMAddress(ctx, claims.Subject)
	return context.WithValue(ctx, ContextKeyClaims, claims)
}

// ClaimsFromContext retrieves the claims of the token that authenticated the request
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ContextKeyClaims).(*Claims)
	return claims, ok && claims != nil
}
