package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as claims do token emitido pelo provedor de autenticação.
// A aplicação não emite tokens, apenas valida.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
