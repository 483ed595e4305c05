package impl

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"sportera/internal/domain/entity"
	domainerrors "sportera/internal/domain/errors"
	"sportera/internal/domain/repository"
	"sportera/internal/infra/auth"
	"sportera/internal/infra/persistence/memory"
	"sportera/internal/infra/revocation"
	mockRepo "sportera/internal/mocks/repository"
	mockService "sportera/internal/mocks/service"
	"sportera/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testHash = "$2a$04$abcdefghijklmnopqrstuuJ0n2bW1xq5lq0yq3zX8c3nXo8aQeW"

type accountMocks struct {
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockService.MockPasswordHasher
	tokens      *mockService.MockTokenService
	revocations *mockService.MockTokenRevocationList
}

func newMockedAccountService(t *testing.T) (*accountService, *accountMocks) {
	t.Helper()

	mocks := &accountMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		hasher:      mockService.NewMockPasswordHasher(t),
		tokens:      mockService.NewMockTokenService(t),
		revocations: mockService.NewMockTokenRevocationList(t),
	}

	srv := NewAccountService(AccountServiceParams{
		TxManager:    mocks.txManager,
		AccountRepo:  mocks.accountRepo,
		Hasher:       mocks.hasher,
		TokenService: mocks.tokens,
		Revocations:  mocks.revocations,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*accountService)
	srv.now = func() time.Time { return testNow }

	return srv, mocks
}

// newInMemoryAccountService wires the real vault, issuer and revocation list over in-memory stores.
func newInMemoryAccountService(t *testing.T) usecase.AccountUsecase {
	t.Helper()

	cfg := newTestConfig()
	cfg.SecretKey.Access = "test-signing-secret"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	accounts := memory.NewAccountStore()

	return NewAccountService(AccountServiceParams{
		TxManager:    memory.NewTransactionManager(accounts, memory.NewPlaceStore()),
		AccountRepo:  memory.NewAccountRepository(accounts),
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokens,
		Revocations:  revocation.NewMemoryTRL(nil),
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})
}

func validRegisterInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Name:     "Camille",
		Email:    "  Camille@Example.com ",
		Password: "secret123",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	srv, mocks := newMockedAccountService(t)
	ctx := context.Background()

	mocks.accountRepo.EXPECT().Exists(ctx, "camille@example.com").Return(false, nil)
	mocks.hasher.EXPECT().Hash("secret123").Return(testHash, nil)
	mocks.accountRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(account *entity.Account) bool {
			return account.Email == "camille@example.com" &&
				account.Points == 0 &&
				account.Kind == entity.AccountKindStandard &&
				account.Secret.Reveal() == testHash
		})).
		Return(nil)

	view, err := srv.Register(ctx, validRegisterInput())
	require.NoError(t, err)
	assert.Equal(t, "Camille", view.Name)
	assert.Equal(t, "camille@example.com", view.Email)
	assert.Zero(t, view.Points)
	assert.Equal(t, testNow, view.CreatedAt)

	body, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(body), testHash)
	assert.NotContains(t, strings.ToLower(string(body)), "password")
}

func TestAccountService_Register_Organization(t *testing.T) {
	srv, mocks := newMockedAccountService(t)
	ctx := context.Background()

	input := validRegisterInput()
	input.Kind = "provider"
	input.OrganizationName = "Paris Sport Club"

	mocks.accountRepo.EXPECT().Exists(ctx, "camille@example.com").Return(false, nil)
	mocks.hasher.EXPECT().Hash("secret123").Return(testHash, nil)
	mocks.accountRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	view, err := srv.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.AccountKindOrganization, view.Kind)
	assert.Equal(t, "Paris Sport Club", view.OrganizationName)
}

func TestAccountService_Register_ValidationFailsBeforeStore(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.RegisterInput)
		field  string
	}{
		{"empty name", func(in *usecase.RegisterInput) { in.Name = "  " }, "name"},
		{"name too long", func(in *usecase.RegisterInput) { in.Name = strings.Repeat("n", 51) }, "name"},
		{"malformed email", func(in *usecase.RegisterInput) { in.Email = "camille@" }, "email"},
		{"short password", func(in *usecase.RegisterInput) { in.Password = "12345" }, "password"},
		{"password over bcrypt limit", func(in *usecase.RegisterInput) { in.Password = strings.Repeat("p", 73) }, "password"},
		{"organization without name", func(in *usecase.RegisterInput) { in.Kind = "organization" }, "organizationName"},
		{"organization name too long", func(in *usecase.RegisterInput) {
			in.Kind = "organization"
			in.OrganizationName = strings.Repeat("o", 101)
		}, "organizationName"},
		{"password checked before organization", func(in *usecase.RegisterInput) {
			in.Kind = "organization"
			in.Password = "123"
		}, "password"},
		{"unknown kind", func(in *usecase.RegisterInput) { in.Kind = "admin" }, "kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, mocks := newMockedAccountService(t)
			input := validRegisterInput()
			tt.mutate(&input)

			view, err := srv.Register(context.Background(), input)
			assert.Nil(t, view)
			requireValidationFailure(t, err, tt.field)

			mocks.accountRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
			mocks.accountRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			mocks.hasher.AssertNotCalled(t, "Hash", mock.Anything)
		})
	}
}

func TestAccountService_Register_PasswordAtLimits(t *testing.T) {
	for _, password := range []string{"123456", strings.Repeat("p", 72)} {
		srv, mocks := newMockedAccountService(t)
		ctx := context.Background()
		input := validRegisterInput()
		input.Password = password

		mocks.accountRepo.EXPECT().Exists(ctx, "camille@example.com").Return(false, nil)
		mocks.hasher.EXPECT().Hash(password).Return(testHash, nil)
		mocks.accountRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

		_, err := srv.Register(ctx, input)
		require.NoError(t, err)
	}
}

func TestAccountService_Register_ExistingEmailSkipsHashing(t *testing.T) {
	srv, mocks := newMockedAccountService(t)
	ctx := context.Background()

	mocks.accountRepo.EXPECT().Exists(ctx, "camille@example.com").Return(true, nil)

	_, err := srv.Register(ctx, validRegisterInput())
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
	mocks.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAccountService_Register_StoreConflictBecomesConflict(t *testing.T) {
	srv, mocks := newMockedAccountService(t)
	ctx := context.Background()

	mocks.accountRepo.EXPECT().Exists(ctx, "camille@example.com").Return(false, nil)
	mocks.hasher.EXPECT().Hash("secret123").Return(testHash, nil)
	mocks.accountRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Account")).Return(repository.ErrAccountConflict)

	_, err := srv.Register(ctx, validRegisterInput())
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	srv, mocks := newMockedAccountService(t)
	ctx := context.Background()

	mocks.accountRepo.EXPECT().Exists(ctx, "camille@example.com").Return(false, nil)
	mocks.hasher.EXPECT().Hash("secret123").Return("", errors.WithStack(domainerrors.ErrPasswordHashFailed))

	_, err := srv.Register(ctx, validRegisterInput())
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	mocks.accountRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAccountService_Register_DuplicateEmailIgnoresCase(t *testing.T) {
	srv := newInMemoryAccountService(t)
	ctx := context.Background()

	input := validRegisterInput()
	input.Email = "A@B.com"
	_, err := srv.Register(ctx, input)
	require.NoError(t, err)

	input.Email = "a@b.com"
	_, err = srv.Register(ctx, input)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAccountService_Register_ConcurrentSameEmail(t *testing.T) {
	srv := newInMemoryAccountService(t)
	ctx := context.Background()

	const workers = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := srv.Register(ctx, validRegisterInput())

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domainerrors.ErrAccountAlreadyExists):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)
}

func TestAccountService_Login_FailuresAreIndistinguishable(t *testing.T) {
	srv := newInMemoryAccountService(t)
	ctx := context.Background()

	_, err := srv.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	_, wrongPassword := srv.Login(ctx, usecase.LoginInput{Email: "camille@example.com", Password: "not-the-secret"})
	_, unknownEmail := srv.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "secret123"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.True(t, errors.Is(wrongPassword, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownEmail, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, domainerrors.KindAuth, domainerrors.KindOf(unknownEmail))
}

func TestAccountService_LoginThenVerify(t *testing.T) {
	srv := newInMemoryAccountService(t)
	ctx := context.Background()

	registered, err := srv.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	out, err := srv.Login(ctx, usecase.LoginInput{Email: " CAMILLE@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, registered.ID, out.Account.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), out.ExpiresAt, time.Minute)

	payload, err := srv.VerifyToken(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, payload.AccountID)
	assert.Equal(t, "camille@example.com", payload.Email)
	assert.Equal(t, entity.AccountKindStandard, payload.Kind)
	assert.NotEmpty(t, payload.TokenID)
}

func TestAccountService_Login_IssuesTokenWithConfiguredTTL(t *testing.T) {
	srv, mocks := newMockedAccountService(t)
	ctx := context.Background()
	account := &entity.Account{
		ID:     uuid.New(),
		Email:  "camille@example.com",
		Kind:   entity.AccountKindOrganization,
		Secret: entity.PasswordDigest(testHash),
	}

	mocks.accountRepo.EXPECT().FindByEmail(ctx, "camille@example.com").Return(account, nil)
	mocks.hasher.EXPECT().Verify("secret123", testHash).Return(true, nil)
	mocks.tokens.EXPECT().
		Issue(entity.SessionPayload{AccountID: account.ID, Email: account.Email, Kind: account.Kind}, time.Hour).
		Return("signed.token.value", nil)

	out, err := srv.Login(ctx, usecase.LoginInput{Email: "Camille@Example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", out.Token)
	assert.Equal(t, testNow.Add(time.Hour), out.ExpiresAt)
}

func TestAccountService_Login_CorruptHashIsInternal(t *testing.T) {
	srv, mocks := newMockedAccountService(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "camille@example.com", Secret: entity.PasswordDigest("garbage")}

	mocks.accountRepo.EXPECT().FindByEmail(ctx, "camille@example.com").Return(account, nil)
	mocks.hasher.EXPECT().Verify("secret123", "garbage").Return(false, errors.WithStack(domainerrors.ErrCorruptCredential))

	_, err := srv.Login(ctx, usecase.LoginInput{Email: "camille@example.com", Password: "secret123"})
	assert.True(t, errors.Is(err, domainerrors.ErrCorruptCredential))
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func TestAccountService_Login_UnknownEmailStillVerifiesPassword(t *testing.T) {
	srv, mocks := newMockedAccountService(t)
	ctx := context.Background()

	mocks.accountRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrAccountNotFound).Times(2)
	mocks.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return(testHash, nil).Once()
	mocks.hasher.EXPECT().Verify("secret123", testHash).Return(false, nil).Once()
	mocks.hasher.EXPECT().Verify("other-secret", testHash).Return(false, nil).Once()

	_, err := srv.Login(ctx, usecase.LoginInput{Email: "Nobody@Example.com", Password: "secret123"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = srv.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "other-secret"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	mocks.tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAccountService_Login_DecoyHashFailureStillRejects(t *testing.T) {
	srv, mocks := newMockedAccountService(t)
	ctx := context.Background()

	mocks.accountRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrAccountNotFound)
	mocks.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("", errors.WithStack(domainerrors.ErrPasswordHashFailed)).Once()

	_, err := srv.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "secret123"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	mocks.hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestAccountService_Login_TokenIssueFailure(t *testing.T) {
	srv, mocks := newMockedAccountService(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "camille@example.com", Secret: entity.PasswordDigest(testHash)}

	mocks.accountRepo.EXPECT().FindByEmail(ctx, "camille@example.com").Return(account, nil)
	mocks.hasher.EXPECT().Verify("secret123", testHash).Return(true, nil)
	mocks.tokens.EXPECT().Issue(mock.Anything, time.Hour).Return("", errors.WithStack(domainerrors.ErrTokenIssueFailed))

	_, err := srv.Login(ctx, usecase.LoginInput{Email: "camille@example.com", Password: "secret123"})
	assert.Equal(t, domainerrors.KindDependency, domainerrors.KindOf(err))
}

func TestAccountService_VerifyToken_PassesRejectionThrough(t *testing.T) {
	srv, mocks := newMockedAccountService(t)

	mocks.tokens.EXPECT().Verify("stale").Return(nil, domainerrors.NewTokenRejectedError(domainerrors.TokenRejectExpired))

	_, err := srv.VerifyToken(context.Background(), "stale")

	var rejected *domainerrors.TokenRejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, domainerrors.TokenRejectExpired, rejected.Reason)
	mocks.revocations.AssertNotCalled(t, "IsRevoked", mock.Anything, mock.Anything)
}

func TestAccountService_VerifyToken_RevocationListDown(t *testing.T) {
	srv, mocks := newMockedAccountService(t)
	ctx := context.Background()

	mocks.tokens.EXPECT().Verify("token").Return(&entity.SessionPayload{AccountID: uuid.New(), TokenID: "jti-1"}, nil)
	mocks.revocations.EXPECT().IsRevoked(ctx, "jti-1").Return(false, errors.New("redis: connection refused"))

	_, err := srv.VerifyToken(ctx, "token")
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
	assert.Equal(t, domainerrors.KindDependency, domainerrors.KindOf(err))
}

func TestAccountService_Logout_RevokesForRemainingLifetime(t *testing.T) {
	srv, mocks := newMockedAccountService(t)
	ctx := context.Background()

	payload := &entity.SessionPayload{AccountID: uuid.New(), TokenID: "jti-1", ExpiresAt: testNow.Add(30 * time.Minute)}
	mocks.tokens.EXPECT().Verify("token").Return(payload, nil)
	mocks.revocations.EXPECT().Revoke(ctx, "jti-1", 30*time.Minute).Return(nil)

	require.NoError(t, srv.Logout(ctx, "token"))
}

func TestAccountService_LogoutThenVerifyIsRevoked(t *testing.T) {
	srv := newInMemoryAccountService(t)
	ctx := context.Background()

	_, err := srv.Register(ctx, validRegisterInput())
	require.NoError(t, err)
	out, err := srv.Login(ctx, usecase.LoginInput{Email: "camille@example.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, srv.Logout(ctx, out.Token))

	_, err = srv.VerifyToken(ctx, out.Token)
	var rejected *domainerrors.TokenRejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, domainerrors.TokenRejectRevoked, rejected.Reason)
}

func TestAccountService_Logout_WithoutRevocationList(t *testing.T) {
	tokens := mockService.NewMockTokenService(t)
	srv := NewAccountService(AccountServiceParams{
		TokenService: tokens,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	tokens.EXPECT().Verify("token").Return(&entity.SessionPayload{AccountID: uuid.New(), TokenID: "jti-1"}, nil)

	assert.NoError(t, srv.Logout(context.Background(), "token"))
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	srv, mocks := newMockedAccountService(t)
	ctx := context.Background()
	id := uuid.New()

	mocks.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

	_, err := srv.GetAccount(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_Points(t *testing.T) {
	srv := newInMemoryAccountService(t)
	ctx := context.Background()

	registered, err := srv.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	view, err := srv.AddPoints(ctx, registered.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, view.Points)

	view, err = srv.SubtractPoints(ctx, registered.ID, 15)
	require.NoError(t, err)
	assert.Equal(t, 25, view.Points)

	_, err = srv.SubtractPoints(ctx, registered.ID, 26)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientPoints))

	_, err = srv.AddPoints(ctx, registered.ID, -1)
	requireValidationFailure(t, err, "points")

	stored, err := srv.GetAccount(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, stored.Points)
}

func TestAccountService_AddPoints_OverflowKeepsBalance(t *testing.T) {
	srv := newInMemoryAccountService(t)
	ctx := context.Background()

	registered, err := srv.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	_, err = srv.AddPoints(ctx, registered.ID, 1)
	require.NoError(t, err)

	_, err = srv.AddPoints(ctx, registered.ID, math.MaxInt)
	requireValidationFailure(t, err, "points")

	stored, err := srv.GetAccount(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Points)
}

func TestAccountService_Points_ConcurrentAdds(t *testing.T) {
	srv := newInMemoryAccountService(t)
	ctx := context.Background()

	registered, err := srv.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = srv.AddPoints(ctx, registered.ID, 1)
		}()
	}
	wg.Wait()

	stored, err := srv.GetAccount(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, stored.Points)
}

func TestAccountService_Points_RunsInsideTransaction(t *testing.T) {
	srv, mocks := newMockedAccountService(t)
	ctx := context.Background()
	id := uuid.New()
	factory := mockRepo.NewMockRepositoryFactory(t)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().AccountRepo().Return(mocks.accountRepo)
	mocks.accountRepo.EXPECT().FindByIDForUpdate(ctx, id).Return(nil, repository.ErrAccountNotFound)

	_, err := srv.AddPoints(ctx, id, 5)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	mocks.accountRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
