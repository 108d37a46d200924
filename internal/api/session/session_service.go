package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	appMiddleware "github.com/FACorreiaa/go-eje-planner/app/middleware"
	"github.com/FACorreiaa/go-eje-planner/internal/api"
	"github.com/FACorreiaa/go-eje-planner/internal/types"
)

const scopePlanner = "planner"

var (
	ErrInvalidToken     = errors.New("invalid session token")
	ErrInvalidIssuer    = errors.New("invalid token issuer")
	ErrInvalidAudience  = errors.New("invalid token audience")
	ErrMissingSessionID = errors.New("token has no session id")
)

var (
	_ Service                   = (*ServiceImpl)(nil)
	_ appMiddleware.TokenParser = (*ServiceImpl)(nil)
)

type Config struct {
	Secret   []byte
	Issuer   string
	Audience string
	TokenTTL time.Duration
}

// Service issues anonymous planner sessions and validates their tokens.
type Service interface {
	Issue(ctx context.Context) (*types.SessionToken, error)
	ParseToken(token string) (string, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	cfg    Config
	now    func() time.Time
}

// NewServiceImpl builds the session service. Without a configured secret a
// random one is generated, so tokens do not survive a restart.
func NewServiceImpl(cfg Config, logger *slog.Logger) *ServiceImpl {
	if len(cfg.Secret) == 0 {
		logger.Warn("SESSION_SECRET not set, using an ephemeral signing key")
		cfg.Secret = []byte(uuid.NewString() + uuid.NewString())
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &ServiceImpl{
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

func (s *ServiceImpl) Issue(ctx context.Context) (*types.SessionToken, error) {
	ctx, span := otel.Tracer("SessionService").Start(ctx, "Issue")
	defer span.End()

	sessionID := uuid.NewString()
	now := s.now()
	expiresAt := now.Add(s.cfg.TokenTTL)

	claims := appMiddleware.Claims{
		Scope: scopePlanner,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}
	if s.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{s.cfg.Audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.Secret)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to sign token")
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	span.SetAttributes(attribute.String("session.id", sessionID))
	s.logger.InfoContext(ctx, "Session issued", slog.String("session", sessionID))
	return &types.SessionToken{
		Token:     signed,
		SessionID: sessionID,
		ExpiresAt: expiresAt,
	}, nil
}

// ParseToken validates signature, expiry, issuer and audience and returns
// the session id carried as subject.
func (s *ServiceImpl) ParseToken(tokenString string) (string, error) {
	claims := &appMiddleware.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.cfg.Secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Issuer != s.cfg.Issuer {
		return "", ErrInvalidIssuer
	}
	if !api.VerifyAudience(claims.Audience, s.cfg.Audience) {
		return "", ErrInvalidAudience
	}
	if claims.Subject == "" {
		return "", ErrMissingSessionID
	}
	return claims.Subject, nil
}
