package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"sportera/config"
	deliverycontext "sportera/internal/delivery/context"
	"sportera/internal/domain/entity"
	domainerrors "sportera/internal/domain/errors"
	"sportera/internal/domain/repository"
	"sportera/internal/domain/service"
	"sportera/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Password length rules. bcrypt reads at most 72 bytes of input.
const (
	MinPasswordLength = 6
	MaxPasswordBytes  = 72
)

// DefaultSessionTTL is the session token lifetime when configuration does not set one.
const DefaultSessionTTL = 7 * 24 * time.Hour

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	revocations  service.TokenRevocationList
	tokenTTL     time.Duration
	now          func() time.Time
	logger       *slog.Logger

	decoyOnce sync.Once
	decoyHash string
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Revocations  service.TokenRevocationList `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	tokenTTL := DefaultSessionTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.TokenTTL > 0 {
		tokenTTL = params.Config.Auth.TokenTTL
	}

	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		revocations:  params.Revocations,
		tokenTTL:     tokenTTL,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the input, rejects known emails before hashing and stores
// the new account with zero points. The store's uniqueness check settles races
// between concurrent registrations of the same email.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AccountView, error) {
	spec, kind, specErr := entity.AccountSpec{
		Name:                    input.Name,
		Email:                   input.Email,
		Kind:                    input.Kind,
		OrganizationName:        input.OrganizationName,
		OrganizationDescription: input.OrganizationDescription,
	}.Normalize()
	if specErr != nil && !isOrganizationFieldError(specErr) {
		return nil, specErr
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}
	if specErr != nil {
		return nil, specErr
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", spec.Email), slog.String("kind", string(kind)))

	exists, err := srv.accountRepo.Exists(ctx, spec.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check for an existing account")
	}
	if exists {
		srv.log(ctx).Warn("Registration rejected, email already registered", slog.String("email", spec.Email))

		return nil, domainerrors.ErrAccountAlreadyExists
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	account := entity.NewAccount(spec, kind, entity.PasswordDigest(hashed), srv.now().UTC())
	if err := srv.accountRepo.Save(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountConflict) {
			srv.log(ctx).Warn("Registration lost a race on email", slog.String("email", spec.Email))

			return nil, domainerrors.ErrAccountAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to save account during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("accountID", account.ID.String()))

	return usecase.NewAccountView(account), nil
}

// Login answers unknown emails and wrong passwords with the same error.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := entity.CanonicalEmail(input.Email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.verifyDecoy(input.Password)
		srv.log(ctx).Warn("Login rejected", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up account for login")
	}

	ok, err := srv.hasher.Verify(input.Password, account.Secret.Reveal())
	if err != nil {
		srv.log(ctx).Error("Stored credential could not be checked", slog.String("accountID", account.ID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify password")
	}
	if !ok {
		srv.log(ctx).Warn("Login rejected", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(entity.SessionPayload{
		AccountID: account.ID,
		Email:     account.Email,
		Kind:      account.Kind,
	}, srv.tokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("accountID", account.ID.String()))

	return &usecase.LoginOutput{
		Account:   usecase.NewAccountView(account),
		Token:     token,
		ExpiresAt: srv.now().UTC().Add(srv.tokenTTL),
	}, nil
}

// VerifyToken checks signature and expiry, then the revocation list when one is configured.
func (srv *accountService) VerifyToken(ctx context.Context, token string) (*entity.SessionPayload, error) {
	payload, err := srv.tokenService.Verify(token)
	if err != nil {
		return nil, err
	}

	if srv.revocations == nil || payload.TokenID == "" {
		return payload, nil
	}

	revoked, err := srv.revocations.IsRevoked(ctx, payload.TokenID)
	if err != nil {
		srv.log(ctx).Error("Revocation list unavailable", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrStoreUnavailable)
	}
	if revoked {
		return nil, domainerrors.NewTokenRejectedError(domainerrors.TokenRejectRevoked)
	}

	return payload, nil
}

func (srv *accountService) Logout(ctx context.Context, token string) error {
	payload, err := srv.tokenService.Verify(token)
	if err != nil {
		return err
	}

	if srv.revocations == nil {
		srv.log(ctx).Warn("Logout without a revocation list, token stays valid until expiry", slog.String("accountID", payload.AccountID.String()))

		return nil
	}

	ttl := payload.RemainingLifetime(srv.now())
	if ttl <= 0 {
		return nil
	}

	if err := srv.revocations.Revoke(ctx, payload.TokenID, ttl); err != nil {
		srv.log(ctx).Error("Failed to revoke token", slog.Any("error", err))

		return errors.WithStack(domainerrors.ErrStoreUnavailable)
	}

	srv.log(ctx).Info("Logged out", slog.String("accountID", payload.AccountID.String()))

	return nil
}

func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*usecase.AccountView, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateAccountError(err)
	}

	return usecase.NewAccountView(account), nil
}

func (srv *accountService) AddPoints(ctx context.Context, id uuid.UUID, points int) (*usecase.AccountView, error) {
	return srv.adjustPoints(ctx, id, func(account *entity.Account, now time.Time) error {
		return account.AddPoints(points, now)
	})
}

func (srv *accountService) SubtractPoints(ctx context.Context, id uuid.UUID, points int) (*usecase.AccountView, error) {
	return srv.adjustPoints(ctx, id, func(account *entity.Account, now time.Time) error {
		return account.SubtractPoints(points, now)
	})
}

// verifyDecoy spends one bcrypt comparison at the configured cost so unknown
// emails take as long to reject as wrong passwords.
func (srv *accountService) verifyDecoy(password string) {
	srv.decoyOnce.Do(func() {
		hash, err := srv.hasher.Hash(uuid.NewString())
		if err != nil {
			srv.logger.Error("Failed to prepare decoy credential", slog.Any("error", err))

			return
		}
		srv.decoyHash = hash
	})
	if srv.decoyHash == "" {
		return
	}

	_, _ = srv.hasher.Verify(password, srv.decoyHash)
}

// adjustPoints locks the account row for the whole read-modify-write.
func (srv *accountService) adjustPoints(ctx context.Context, id uuid.UUID, apply func(*entity.Account, time.Time) error) (*usecase.AccountView, error) {
	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return translateAccountError(err)
		}

		if err := apply(account, srv.now().UTC()); err != nil {
			return err
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return translateAccountError(err)
		}
		updated = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Points adjusted", slog.String("accountID", id.String()), slog.Int("balance", updated.Points))

	return usecase.NewAccountView(updated), nil
}

func translateAccountError(err error) error {
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		return domainerrors.ErrAccountNotFound
	case errors.Is(err, repository.ErrAccountConflict):
		return domainerrors.ErrAccountAlreadyExists
	default:
		return errors.Wrap(err, "account store failure")
	}
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return domainerrors.NewValidationErrorf("password", "password must be at least %d characters", MinPasswordLength)
	}
	if len(password) > MaxPasswordBytes {
		return domainerrors.NewValidationErrorf("password", "password must be at most %d bytes", MaxPasswordBytes)
	}

	return nil
}

// isOrganizationFieldError reports whether err concerns the organization profile,
// which is checked after the password.
func isOrganizationFieldError(err error) bool {
	var validationErr *domainerrors.ValidationError
	if !errors.As(err, &validationErr) {
		return false
	}

	return validationErr.Field == "organizationName" || validationErr.Field == "organizationDescription"
}
