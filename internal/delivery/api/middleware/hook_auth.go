package middleware

import (
	"crypto/subtle"
	"log/slog"
	"strings"

	"circlecheck/config"
	deliverycontext "circlecheck/internal/delivery/context"
	domainerrors "circlecheck/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// HeaderHookSecret carries the shared secret configured on the database webhook
const HeaderHookSecret = "x-hook-secret"

// HookAuthMiddleware guards the location webhook
type HookAuthMiddleware struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewHookAuthMiddleware is the constructor for HookAuthMiddleware.
func NewHookAuthMiddleware(cfg *config.Config, logger *slog.Logger) *HookAuthMiddleware {
	return &HookAuthMiddleware{cfg: cfg, logger: logger}
}

// Authenticate rejects requests before any state is touched.
// Missing configuration is reported ahead of credential checks.
func (m *HookAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

		if err := m.cfg.ValidateHook(); err != nil {
			logger.Error("[Hook] Missing server config", slog.Any("error", err))

			return domainerrors.ErrConfigMissing.WithDetails(err.Error())
		}

		if secret := m.cfg.Hook.Secret; secret != "" {
			provided := c.Request().Header.Get(HeaderHookSecret)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				logger.Warn("[Hook] Rejected request with invalid hook secret")

				return domainerrors.ErrUnauthorized
			}
		}

		if jwtSecret := m.cfg.Hook.JWTSecret; jwtSecret != "" {
			if err := verifyHookToken(c.Request().Header.Get(echo.HeaderAuthorization), jwtSecret); err != nil {
				logger.Warn("[Hook] Rejected request with invalid bearer token", slog.Any("error", err))

				return domainerrors.ErrUnauthorized
			}
		}

		return next(c)
	}
}

func verifyHookToken(authHeader, secret string) error {
	if authHeader == "" {
		return jwt.ErrTokenMalformed
	}

	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return jwt.ErrTokenMalformed
	}

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return err
	}

	if !token.Valid {
		return jwt.ErrTokenInvalidClaims
	}

	return nil
}
