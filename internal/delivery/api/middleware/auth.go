package middleware

import (
	"log/slog"
	"strings"

	"sportera/internal/delivery/api/response"
	deliverycontext "sportera/internal/delivery/context"
	"sportera/internal/domain/entity"
	domainerrors "sportera/internal/domain/errors"
	"sportera/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AuthMiddleware authenticates session tokens and gates routes by account kind.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// Authenticate verifies the bearer token, then checks the account behind it still exists.
// The kind stored on the context is the account's current kind, not the one frozen in the token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Authorization header is missing")
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if !strings.HasPrefix(authHeader, bearerPrefix) || token == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()

		session, err := m.accountUC.VerifyToken(ctx, token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		account, err := m.accountUC.GetAccount(ctx, session.AccountID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrAccountNotFound) {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Token presented for a deleted account",
					slog.String("account_id", session.AccountID.String()))

				return response.Unauthorized(c, "ACCOUNT_NOT_FOUND", "account no longer exists")
			}

			return response.HandleAppError(c, err)
		}

		current := *session
		current.Kind = account.Kind
		current.Email = account.Email
		deliverycontext.SetSession(c, &current, token)

		return next(c)
	}
}

// RequireKind only lets through callers whose account has the given kind.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireKind(kind entity.AccountKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := deliverycontext.GetSession(c)
			if !ok {
				return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "authentication required")
			}

			if session.Kind != kind {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: requires an "+string(kind)+" account")
			}

			return next(c)
		}
	}
}

// GetAccountID returns the authenticated account id.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return uuid.Nil, false
	}

	return session.AccountID, true
}
