package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"paygate/config"
	"paygate/internal/domain/entity"
	"paygate/internal/domain/service"
	"paygate/internal/errors"
)

var errSecretsMissing = errors.New("jwt secrets must be provided")

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errSecretsMissing
	}

	accessTTL, refreshTTL := time.Hour, 7*24*time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// SignAccessToken mints an access token carrying the user's public fields.
func (s *jwtService) SignAccessToken(user *entity.User) (string, error) {
	now := s.now()
	claims := &service.AccessClaims{
		User: user.Public(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return signed, nil
}

// SignRefreshToken mints a refresh token carrying only the user id.
func (s *jwtService) SignRefreshToken(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := &service.RefreshClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			// A unique ID keeps two tokens minted in the same second distinct.
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.refreshSecret)
	if err != nil {
		return "", errors.Wrap(err, "sign refresh token")
	}

	return signed, nil
}

// ParseAccessToken checks the signature only; expiry is left to the caller.
func (s *jwtService) ParseAccessToken(tokenString string) (*service.AccessClaims, error) {
	claims := &service.AccessClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc(s.accessSecret),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse access token")
	}

	return claims, nil
}

// ValidateRefreshToken checks signature and expiry.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.RefreshClaims, error) {
	claims := &service.RefreshClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc(s.refreshSecret),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "validate refresh token")
	}

	return claims, nil
}

func (s *jwtService) keyFunc(secret []byte) jwt.Keyfunc {
	return func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}
}
