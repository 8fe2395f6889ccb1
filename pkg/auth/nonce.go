package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNonceNotFound is returned when no unexpired nonce exists for an address.
var ErrNonceNotFound = errors.New("nonce not found")

// ChallengeStore keeps single-use login challenges and revoked token ids.
//
//go:generate mockery --name ChallengeStore --output mocks --outpkg mocks --filename mock_challenge_store.go --with-expecter
type ChallengeStore interface {
	// IssueNonce stores a fresh login message for address and returns it.
	IssueNonce(ctx context.Context, address string) (string, error)
	// ConsumeNonce atomically reads and deletes the pending message for address.
	ConsumeNonce(ctx context.Context, address string) (string, error)
	// Revoke marks a token id as unusable until expiresAt.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	// IsRevoked reports whether tokenID was revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RedisChallengeStore implements ChallengeStore on Redis with key expiry.
type RedisChallengeStore struct {
	client   redis.UniversalClient
	prefix   string
	nonceTTL time.Duration
	now      func() time.Time
}

// NewRedisChallengeStore creates a store whose keys live under prefix.
func NewRedisChallengeStore(client redis.UniversalClient, prefix string, nonceTTL time.Duration) *RedisChallengeStore {
	return &RedisChallengeStore{client: client, prefix: prefix, nonceTTL: nonceTTL, now: time.Now}
}

func (s *RedisChallengeStore) nonceKey(address string) string {
	return fmt.Sprintf("%s:auth:nonce:%s", s.prefix, NormalizeAddress(address))
}

func (s *RedisChallengeStore) revokedKey(tokenID string) string {
	return fmt.Sprintf("%s:auth:revoked:%s", s.prefix, tokenID)
}

// IssueNonce replaces any pending challenge for address.
func (s *RedisChallengeStore) IssueNonce(ctx context.Context, address string) (string, error) {
	message := LoginMessage(uuid.NewString())
	if err := s.client.Set(ctx, s.nonceKey(address), message, s.nonceTTL).Err(); err != nil {
		return "", fmt.Errorf("store nonce: %w", err)
	}
	return message, nil
}

func (s *RedisChallengeStore) ConsumeNonce(ctx context.Context, address string) (string, error) {
	message, err := s.client.GetDel(ctx, s.nonceKey(address)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNonceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("consume nonce: %w", err)
	}
	return message, nil
}

func (s *RedisChallengeStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, s.revokedKey(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *RedisChallengeStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.revokedKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("check revocation: %w", err)
	}
	return n > 0, nil
}
