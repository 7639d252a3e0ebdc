package impl

import (
	"context"
	"strings"
	"testing"

	"delishub/internal/domain/entity"
	domainerrors "delishub/internal/domain/errors"
	"delishub/internal/domain/repository"
	"delishub/internal/domain/service"
	"delishub/internal/infra/auth"
	mockRepo "delishub/internal/mocks/repository"
	mockService "delishub/internal/mocks/service"
	"delishub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	return accountServiceFixtures{
		service: NewAccountService(AccountServiceParams{
			TxManager:    txManager,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// createRealHasherAccountService wires a real bcrypt hasher so stored hashes can be verified afterwards.
func createRealHasherAccountService(t *testing.T) (usecase.AccountUsecase, service.PasswordHasher, *mockRepo.MockTransactionManager) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	srv := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		Hasher:       hasher,
		TokenService: mockService.NewMockTokenService(t),
		Logger:       newDiscardLogger(),
	})

	return srv, hasher, txManager
}

func newStoredUser(username, email, hash string) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
}

func strPtr(s string) *string {
	return &s
}

func TestAccountService_UpdateProfile_ChangesOnlyUsername(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	user := newStoredUser("a", "a@x.com", "stored-hash")

	repos := expectTx(t, fx.txManager)
	repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "stored-hash").Return(true)
	repos.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "newname" && u.Email == "a@x.com" && u.PasswordHash == "stored-hash"
		})).
		Return(nil)
	fx.tokenService.EXPECT().GenerateAccessToken(user.ID, "newname").Return("new-token", nil)

	output, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
		Username: strPtr("newname"),
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-token", output.AccessToken)
	assert.Equal(t, &entity.UserSummary{ID: user.ID, Username: "newname", Email: "a@x.com"}, output.User)
}

func TestAccountService_UpdateProfile_OmittedOrEmptyFieldsUnchanged(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.UpdateProfileInput
	}{
		{name: "omitted", input: &usecase.UpdateProfileInput{Password: "secret1"}},
		{name: "empty strings", input: &usecase.UpdateProfileInput{Username: strPtr(""), Email: strPtr(""), Password: "secret1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			ctx := context.Background()
			user := newStoredUser("a", "a@x.com", "stored-hash")

			repos := expectTx(t, fx.txManager)
			repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			fx.hasher.EXPECT().Check("secret1", "stored-hash").Return(true)
			repos.userRepo.EXPECT().Update(ctx, user).Return(nil)
			fx.tokenService.EXPECT().GenerateAccessToken(user.ID, "a").Return("token", nil)

			output, err := fx.service.UpdateProfile(ctx, user.ID, tt.input)

			require.NoError(t, err)
			assert.Equal(t, "a", output.User.Username)
			assert.Equal(t, "a@x.com", output.User.Email)
		})
	}
}

func TestAccountService_UpdateProfile_ChangesEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	user := newStoredUser("a", "a@x.com", "stored-hash")

	repos := expectTx(t, fx.txManager)
	repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "stored-hash").Return(true)
	repos.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.tokenService.EXPECT().GenerateAccessToken(user.ID, "a").Return("token", nil)

	output, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
		Email:    strPtr("b@x.com"),
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "a", output.User.Username)
	assert.Equal(t, "b@x.com", output.User.Email)
}

func TestAccountService_UpdateProfile_WrongPasswordLeavesRecordUnchanged(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	user := newStoredUser("a", "a@x.com", "stored-hash")
	before := *user

	repos := expectTx(t, fx.txManager)
	repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	output, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
		Username: strPtr("newname"),
		Email:    strPtr("b@x.com"),
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrIncorrectPassword))
	assert.Equal(t, before, *user)
}

func TestAccountService_UpdateProfile_UserNotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	repos := expectTx(t, fx.txManager)
	repos.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Password: "secret1"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_UpdateProfile_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	user := newStoredUser("a", "a@x.com", "stored-hash")

	repos := expectTx(t, fx.txManager)
	repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "stored-hash").Return(true)
	repos.userRepo.EXPECT().Update(ctx, user).Return(domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists"))

	_, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
		Email:    strPtr("taken@x.com"),
		Password: "secret1",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestAccountService_UpdateProfile_TokenFailureRollsBack(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	user := newStoredUser("a", "a@x.com", "stored-hash")

	repos := expectTx(t, fx.txManager)
	repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "stored-hash").Return(true)
	repos.userRepo.EXPECT().Update(ctx, user).Return(nil)
	fx.tokenService.EXPECT().GenerateAccessToken(user.ID, "a").Return("", errors.New("signing failed"))

	_, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{Password: "secret1"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestAccountService_UpdateEmail_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	user := newStoredUser("a", "a@x.com", "stored-hash")

	repos := expectTx(t, fx.txManager)
	repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "stored-hash").Return(true)
	repos.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Email == "new@x.com" && u.Username == "a" })).
		Return(nil)

	summary, err := fx.service.UpdateEmail(ctx, user.ID, &usecase.UpdateEmailInput{Email: "new@x.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, &entity.UserSummary{ID: user.ID, Username: "a", Email: "new@x.com"}, summary)
}

func TestAccountService_UpdateEmail_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	user := newStoredUser("a", "a@x.com", "stored-hash")

	repos := expectTx(t, fx.txManager)
	repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	summary, err := fx.service.UpdateEmail(ctx, user.ID, &usecase.UpdateEmailInput{Email: "new@x.com", Password: "wrong"})

	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, "a@x.com", user.Email)
}

func TestAccountService_UpdateEmail_UserNotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	repos := expectTx(t, fx.txManager)
	repos.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.UpdateEmail(ctx, userID, &usecase.UpdateEmailInput{Email: "new@x.com", Password: "secret1"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_UpdatePassword_ArgumentChecksSkipStore(t *testing.T) {
	tests := []struct {
		name        string
		current     string
		newPassword string
		want        error
	}{
		{name: "same password", current: "secret1", newPassword: "secret1", want: domainerrors.ErrPasswordUnchanged},
		{name: "same short password", current: "abc", newPassword: "abc", want: domainerrors.ErrPasswordUnchanged},
		{name: "seven characters", current: "secret1", newPassword: "1234567", want: domainerrors.ErrPasswordTooShort},
		{name: "empty", current: "secret1", newPassword: "", want: domainerrors.ErrPasswordTooShort},
		{name: "over 72 bytes", current: "secret1", newPassword: strings.Repeat("a", 73), want: domainerrors.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: touching the store or the hasher fails the test.
			fx := createTestAccountService(t)

			err := fx.service.UpdatePassword(context.Background(), uuid.New(), &usecase.UpdatePasswordInput{
				CurrentPassword: tt.current,
				NewPassword:     tt.newPassword,
			})

			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestAccountService_UpdatePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	user := newStoredUser("a", "a@x.com", "stored-hash")

	repos := expectTx(t, fx.txManager)
	repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	err := fx.service.UpdatePassword(ctx, user.ID, &usecase.UpdatePasswordInput{CurrentPassword: "wrong", NewPassword: "newpass1"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, "stored-hash", user.PasswordHash)
}

func TestAccountService_UpdatePassword_UserNotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	repos := expectTx(t, fx.txManager)
	repos.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	err := fx.service.UpdatePassword(ctx, userID, &usecase.UpdatePasswordInput{CurrentPassword: "secret1", NewPassword: "newpass1"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_UpdatePassword_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	user := newStoredUser("a", "a@x.com", "stored-hash")

	repos := expectTx(t, fx.txManager)
	repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "stored-hash").Return(true)
	fx.hasher.EXPECT().Hash("newpass1").Return("", errors.New("hash failed"))

	err := fx.service.UpdatePassword(ctx, user.ID, &usecase.UpdatePasswordInput{CurrentPassword: "secret1", NewPassword: "newpass1"})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	assert.Equal(t, "stored-hash", user.PasswordHash)
}

func TestAccountService_UpdatePassword_StoreFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	user := newStoredUser("a", "a@x.com", "stored-hash")

	repos := expectTx(t, fx.txManager)
	repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "stored-hash").Return(true)
	fx.hasher.EXPECT().Hash("newpass1").Return("new-hash", nil)
	repos.userRepo.EXPECT().Update(ctx, user).Return(domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "failed to update user"))

	err := fx.service.UpdatePassword(ctx, user.ID, &usecase.UpdatePasswordInput{CurrentPassword: "secret1", NewPassword: "newpass1"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestAccountService_UpdatePassword_EightCharactersBoundary(t *testing.T) {
	srv, hasher, txManager := createRealHasherAccountService(t)
	ctx := context.Background()

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	user := newStoredUser("a", "a@x.com", hash)

	repos := expectTx(t, txManager)
	repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	repos.userRepo.EXPECT().Update(ctx, user).Return(nil)

	err = srv.UpdatePassword(ctx, user.ID, &usecase.UpdatePasswordInput{CurrentPassword: "secret1", NewPassword: "12345678"})

	require.NoError(t, err)
	assert.True(t, hasher.Check("12345678", user.PasswordHash))
}

func TestAccountService_UpdatePassword_Scenario(t *testing.T) {
	srv, hasher, txManager := createRealHasherAccountService(t)
	ctx := context.Background()

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	user := newStoredUser("a", "a@x.com", hash)

	err = srv.UpdatePassword(ctx, user.ID, &usecase.UpdatePasswordInput{CurrentPassword: "secret1", NewPassword: "secret1"})
	require.True(t, errors.Is(err, domainerrors.ErrPasswordUnchanged))
	assert.Equal(t, hash, user.PasswordHash)

	var stored *entity.User
	repos := expectTx(t, txManager)
	repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	repos.userRepo.EXPECT().Update(ctx, user).
		Run(func(_ context.Context, u *entity.User) { stored = u }).
		Return(nil)

	err = srv.UpdatePassword(ctx, user.ID, &usecase.UpdatePasswordInput{CurrentPassword: "secret1", NewPassword: "newpass1"})
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"))
	assert.True(t, hasher.Check("newpass1", stored.PasswordHash))
	assert.False(t, hasher.Check("secret1", stored.PasswordHash))
	assert.Equal(t, "a", stored.Username)
	assert.Equal(t, "a@x.com", stored.Email)
}
