package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rogerio-castellano/retail-pos/internal/config"
	"github.com/rogerio-castellano/retail-pos/internal/models"
)

var (
	jwtSecret = []byte("dev-only-secret")
	accessTTL = 15 * time.Minute
)

var ErrInvalidToken = errors.New("invalid token")

// Configure installs the signing secret and token lifetime.
func Configure(cfg config.JWTConfig) {
	jwtSecret = []byte(cfg.Secret)
	if cfg.AccessTTL > 0 {
		accessTTL = cfg.AccessTTL
	}
}

// Claims carries the caller identity and the shops the caller may access.
type Claims struct {
	Username string   `json:"username"`
	Role     string   `json:"role"`
	Shops    []string `json:"shops"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller attached to a request context.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     string
	ShopIDs  []uuid.UUID
}

// CanAccess reports whether shopID is one of the caller's shops.
func (p Principal) CanAccess(shopID uuid.UUID) bool {
	for _, id := range p.ShopIDs {
		if id == shopID {
			return true
		}
	}
	return false
}

func GenerateToken(user models.User) (string, error) {
	shops := make([]string, len(user.ShopIDs))
	for i, id := range user.ShopIDs {
		shops[i] = id.String()
	}

	now := time.Now()
	claims := Claims{
		Username: user.Username,
		Role:     user.Role,
		Shops:    shops,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates a raw token (with or without the "Bearer " prefix)
// and returns the principal it describes.
func ParseToken(raw string) (Principal, error) {
	tokenStr := strings.TrimPrefix(raw, "Bearer ")

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	p := Principal{UserID: userID, Username: claims.Username, Role: claims.Role}
	for _, s := range claims.Shops {
		id, err := uuid.Parse(s)
		if err != nil {
			return Principal{}, fmt.Errorf("%w: bad shop id %q", ErrInvalidToken, s)
		}
		p.ShopIDs = append(p.ShopIDs, id)
	}
	return p, nil
}

type contextKey string

const principalKey = contextKey("principal")

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}
