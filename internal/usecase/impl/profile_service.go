package impl

import (
	"context"
	"log/slog"

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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	qrService service.QRCodeService
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetUserProfile retrieves the user's recipes with their owner and comments.
func (srv *profileService) GetUserProfile(ctx context.Context, userID uuid.UUID) ([]*entity.Recipe, error) {
	srv.log(ctx).Debug("Getting user profile", slog.String("userID", userID.String()))

	var recipes []*entity.Recipe
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RecipeRepo().FindByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find recipes")
		}
		recipes = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to get user profile", slog.String("userID", userID.String()), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to get user profile")
	}

	if recipes == nil {
		recipes = []*entity.Recipe{}
	}

	return recipes, nil
}

// GetProfileQRCode renders a QR code linking to the profile of an existing user.
func (srv *profileService) GetProfileQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		exists, err := repoFactory.UserRepo().Exists(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to look up user")
		}
		if !exists {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to generate profile QR code")
		}
		srv.log(ctx).Error("Failed to look up user for QR code", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to generate profile QR code")
	}

	png, err := srv.qrService.GenerateProfileQR(userID)
	if err != nil {
		srv.log(ctx).Error("Failed to render profile QR code", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to generate profile QR code")
	}

	return png, nil
}
