package mock

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// createJWT creates a signed access token for the account.
func (s *Service) createJWT(email string, generation int) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": s.Issuer,
		"sub": email,
		"exp": now.Add(s.AccessTokenTTL).Unix(),
		"iat": now.Unix(),
		"jti": uuid.NewString(),
		"typ": "access_token",
		"gen": generation,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(s.PrivateKey)
}

func (s *Service) newRefreshToken(email string) string {
	token := uuid.NewString()
	s.refreshTokens.Put(token, email)
	return token
}

// authenticate returns the account email behind the bearer token.
func (s *Service) authenticate(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return "", errors.New("missing bearer token")
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return &s.PrivateKey.PublicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	generation, _ := claims["gen"].(float64)
	if int(generation) != s.currentGeneration() {
		return "", errors.New("token expired")
	}
	subject, _ := claims.GetSubject()
	return subject, nil
}
