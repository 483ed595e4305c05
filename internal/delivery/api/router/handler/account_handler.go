package handler

import (
	"log/slog"
	"net/http"
	"time"

	"sportera/internal/delivery/api/middleware"
	"sportera/internal/delivery/api/response"
	deliverycontext "sportera/internal/delivery/context"
	domainerrors "sportera/internal/domain/errors"
	"sportera/internal/infra/metrics"
	"sportera/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// AccountHandler serves registration, login, logout and the caller's profile
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

// RegisterRequest represents the request body for opening an account.
// Field rules beyond presence are enforced by the account service.
type RegisterRequest struct {
	Name                    string `json:"name" validate:"required"`
	Email                   string `json:"email" validate:"required"`
	Password                string `json:"password" validate:"required"`
	Kind                    string `json:"kind"`
	OrganizationName        string `json:"organization_name"`
	OrganizationDescription string `json:"organization_description"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Account   *usecase.AccountView `json:"account"`
	Token     string               `json:"token"`
	TokenType string               `json:"token_type"`
	ExpiresAt time.Time            `json:"expires_at"`
}

// Register handles account registration
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	account, err := h.accountUC.Register(c.Request().Context(), usecase.RegisterInput{
		Name:                    req.Name,
		Email:                   req.Email,
		Password:                req.Password,
		Kind:                    req.Kind,
		OrganizationName:        req.OrganizationName,
		OrganizationDescription: req.OrganizationDescription,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.metrics.ObserveRegistration()

	return response.SuccessWithMessage(c, http.StatusCreated, "account created", account)
}

// Login handles credential checks and issues a session token
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	output, err := h.accountUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.metrics.ObserveLogin(loginOutcome(err))

		return response.HandleAppError(c, err)
	}

	h.metrics.ObserveLogin(metrics.LoginSucceeded)

	return response.SuccessWithMessage(c, http.StatusOK, "logged in", LoginResponse{
		Account:   output.Account,
		Token:     output.Token,
		TokenType: "Bearer",
		ExpiresAt: output.ExpiresAt,
	})
}

// Logout revokes the caller's current token
func (h *AccountHandler) Logout(c echo.Context) error {
	token := deliverycontext.GetAccessToken(c)
	if token == "" {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "authentication required")
	}

	if err := h.accountUC.Logout(c.Request().Context(), token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "logged out", nil)
}

// Me returns the authenticated caller's account
func (h *AccountHandler) Me(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "authentication required")
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

func loginOutcome(err error) string {
	switch domainerrors.KindOf(err) {
	case domainerrors.KindAuth, domainerrors.KindValidation:
		return metrics.LoginRejected
	default:
		return metrics.LoginFailed
	}
}
