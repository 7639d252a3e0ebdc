// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"unicode/utf8"

	deliverycontext "delishub/internal/delivery/context"
	"delishub/internal/domain/entity"
	domainerrors "delishub/internal/domain/errors"
	"delishub/internal/domain/repository"
	"delishub/internal/domain/service"
	"delishub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateProfile verifies the password, applies the supplied username/email and re-issues an access token.
func (srv *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.UpdateProfileOutput, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}

	srv.log(ctx).Info("Updating profile", slog.String("userID", userID.String()))

	var output *usecase.UpdateProfileOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := findUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return errors.WithStack(domainerrors.ErrIncorrectPassword)
		}

		// Empty values count as "not supplied".
		if username := valueOf(input.Username); username != "" {
			user.Username = username
		}
		if email := valueOf(input.Email); email != "" {
			user.Email = email
		}

		if err := saveUser(ctx, userRepo, user); err != nil {
			return err
		}

		accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Username)
		if err != nil {
			return errors.Wrap(err, "failed to issue access token")
		}

		output = &usecase.UpdateProfileOutput{
			User:        user.Summary(),
			AccessToken: accessToken,
		}

		return nil
	})
	if err != nil {
		return nil, srv.fail(ctx, err, "failed to update profile")
	}

	return output, nil
}

// UpdateEmail verifies the password and replaces the stored email.
func (srv *accountService) UpdateEmail(ctx context.Context, userID uuid.UUID, input *usecase.UpdateEmailInput) (*entity.UserSummary, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}

	srv.log(ctx).Info("Updating email", slog.String("userID", userID.String()))

	var summary *entity.UserSummary
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := findUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		user.Email = input.Email
		if err := saveUser(ctx, userRepo, user); err != nil {
			return err
		}
		summary = user.Summary()

		return nil
	})
	if err != nil {
		return nil, srv.fail(ctx, err, "failed to update email")
	}

	return summary, nil
}

// UpdatePassword validates the new password, verifies the current one and stores the new hash.
// Argument checks run before the store is touched.
func (srv *accountService) UpdatePassword(ctx context.Context, userID uuid.UUID, input *usecase.UpdatePasswordInput) error {
	if input == nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := validateNewPassword(input.CurrentPassword, input.NewPassword); err != nil {
		return err
	}

	srv.log(ctx).Info("Updating password", slog.String("userID", userID.String()))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := findUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
			return errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		hash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

			return errors.WithStack(domainerrors.ErrPasswordHashFailed)
		}
		user.PasswordHash = hash

		return saveUser(ctx, userRepo, user)
	})
	if err != nil {
		return srv.fail(ctx, err, "failed to update password")
	}

	return nil
}

// fail logs errors that carry no domain meaning and wraps the result with context.
func (srv *accountService) fail(ctx context.Context, err error, message string) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		srv.log(ctx).Error(message, slog.Any("error", err))
	}

	return errors.Wrap(err, message)
}

func validateNewPassword(current, next string) error {
	if next == current {
		return errors.WithStack(domainerrors.ErrPasswordUnchanged)
	}
	if utf8.RuneCountInString(next) < entity.MinPasswordLength {
		return errors.WithStack(domainerrors.ErrPasswordTooShort)
	}
	if len(next) > entity.MaxPasswordLength {
		return errors.WithStack(domainerrors.ErrPasswordTooLong)
	}

	return nil
}

// findUser loads a user and translates the repository sentinel into the domain error.
func findUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func saveUser(ctx context.Context, userRepo repository.UserRepository, user *entity.User) error {
	if err := userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return errors.Wrap(err, "failed to save user")
	}

	return nil
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
