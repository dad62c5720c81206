package jwt

import (
	"errors"
	"fmt"
	"time"

	"ecotrack/domain"

	"github.com/golang-jwt/jwt/v4"
)

const DefaultTokenTTL = 30 * 24 * time.Hour

type (
	// JWTService issues the bearer tokens that guard the API when a secret
	// is configured.
	JWTService interface {
		GenerateToken(subject string, ttl time.Duration) (string, error)
		ValidateToken(token string) (*jwt.Token, error)
		GetSubjectByToken(token string) (string, error)
	}

	jwtClaim struct {
		Scope string `json:"scope"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		now       func() time.Time
	}
)

const scopeAPI = "api"

func NewJWTService(secretKey string) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    "ECOTRACK",
		now:       time.Now,
	}
}

func (j *jwtService) GenerateToken(subject string, ttl time.Duration) (string, error) {
	if j.secretKey == "" {
		return "", fmt.Errorf("%w: JWT secret is not configured", domain.ErrUnauthorized)
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := j.now()
	claims := jwtClaim{
		scopeAPI,
		jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtClaim{}, j.parseToken)
}

func (j *jwtService) GetSubjectByToken(token string) (string, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtClaim)
	if claims.Scope != scopeAPI || claims.Issuer != j.issuer {
		return "", domain.ErrTokenInvalid
	}
	return claims.Subject, nil
}
