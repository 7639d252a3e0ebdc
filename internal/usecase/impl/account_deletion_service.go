package impl

import (
	"context"
	"log/slog"

	deliverycontext "delishub/internal/delivery/context"
	"delishub/internal/domain/constants"
	domainerrors "delishub/internal/domain/errors"
	"delishub/internal/domain/repository"
	"delishub/internal/domain/service"
	"delishub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountDeletionService implements the AccountDeletionUsecase interface.
type accountDeletionService struct {
	txManager repository.TransactionManager
	presence  usecase.PresenceUsecase
	publisher service.EventPublisher
	logger    *slog.Logger
}

// AccountDeletionServiceParams holds dependencies for AccountDeletionService, injected by Fx.
type AccountDeletionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Presence  usecase.PresenceUsecase
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAccountDeletionService is the constructor for accountDeletionService.
func NewAccountDeletionService(params AccountDeletionServiceParams) usecase.AccountDeletionUsecase {
	return &accountDeletionService{
		txManager: params.TxManager,
		presence:  params.Presence,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountDeletionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DeleteAccount removes the user's recipes (comments on them cascade), the user's comments and the user,
// all in one transaction.
func (srv *accountDeletionService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", slog.String("userID", userID.String()))

	var recipesRemoved, commentsRemoved int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, err := userRepo.Exists(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to look up user")
		}
		if !exists {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}

		recipesRemoved, err = repoFactory.RecipeRepo().DeleteByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to delete recipes")
		}

		commentsRemoved, err = repoFactory.CommentRepo().DeleteByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to delete comments")
		}

		if err := userRepo.Delete(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrUserNotFound)
			}

			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return errors.Wrap(err, "failed to delete account")
		}

		srv.log(ctx).Error("Account deletion rolled back", slog.String("userID", userID.String()), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrUserDeletionFailed, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted",
		slog.String("userID", userID.String()),
		slog.Int64("recipesRemoved", recipesRemoved),
		slog.Int64("commentsRemoved", commentsRemoved),
	)

	srv.presence.Forget(ctx, userID)
	publishAccountEvent(ctx, srv.publisher, srv.log(ctx), constants.EventTypeAccountDeleted, userID)

	return nil
}
