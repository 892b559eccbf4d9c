/* JWT issuance and validation for API users */

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const (
	issuer           = "CreditPathAI-api"
	defaultSecretKey = "default_secret_key"
)

// Claims carries the user's email as subject plus the numeric user id.
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// Email returns the subject claim.
func (c *Claims) Email() string {
	return c.Subject
}

// TokenManager signs and verifies HS256 tokens.
type TokenManager struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTokenManager falls back to a development key when secret is empty.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if secret == "" {
		secret = defaultSecretKey
		zap.L().Warn("JWT secret is not set, using the default development key")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{key: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateToken issues a token for the given user.
func (m *TokenManager) GenerateToken(userID int, email string) (string, error) {
	now := m.now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.key)
	if err != nil {
		return "", eris.Wrap(err, "auth: sign token")
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a token, rejecting other signing methods.
func (m *TokenManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, eris.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
