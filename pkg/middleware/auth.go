package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/config"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/pkg/apiErrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

var publicPaths = map[string]bool{
	"/healthcheck": true,
}

// AuthMiddleware valida o token do provedor de autenticação e aplica o
// gate de domínio corporativo sobre o e-mail das claims
func AuthMiddleware(authCfg config.Auth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			// Credencial ausente é erro de configuração, não silencioso
			if authCfg.Secret == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingConfig, "AUTH_SECRET não configurado", nil)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := ValidateToken(tokenString, authCfg.Secret)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
				return
			}

			if !EmailAllowed(claims.Email, authCfg.AllowedEmailDomain) {
				logrus.WithField("email", claims.Email).Warn("Acesso negado: e-mail fora do domínio corporativo")
				apiErrors.WriteError(w, apiErrors.ErrDomainNotAllowed, "Acesso restrito ao domínio corporativo", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ValidateToken verifica assinatura HS256 e expiração do token
func ValidateToken(tokenString, secret string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// EmailAllowed aplica o sufixo de domínio corporativo
func EmailAllowed(email, allowedDomain string) bool {
	if allowedDomain == "" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(email), strings.ToLower(allowedDomain))
}

// UserFromContext recupera as claims colocadas pelo AuthMiddleware
func UserFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok
}
