package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/ShahiTechnovation/X4PN/pkg/app/errors"
	apphttp "github.com/ShahiTechnovation/X4PN/pkg/app/http"
)

// Middleware authenticates Bearer tokens and stores the wallet address on the
// request context. Requests without a valid token are rejected with 401.
func Middleware(issuer *TokenIssuer, challenges ChallengeStore, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "missing bearer token"))
				return
			}
			claims, err := issuer.Validate(raw)
			if err != nil {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid or expired token"))
				return
			}
			revoked, err := challenges.IsRevoked(r.Context(), claims.ID)
			if err != nil {
				logger.Error("revocation lookup failed", zap.String("jti", claims.ID), zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.DependencyError(err, "authentication unavailable"))
				return
			}
			if revoked {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "token revoked"))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
