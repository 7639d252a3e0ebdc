package handler

import (
	"net/http"
	"testing"
	"time"

	"delishub/internal/domain/entity"
	domainerrors "delishub/internal/domain/errors"
	mockusecase "delishub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileHandler_GetUserProfile(t *testing.T) {
	owner := uuid.New()
	commenter := uuid.New()

	t.Run("lists recipes with owner and comments", func(t *testing.T) {
		profile := mockusecase.NewMockProfileUsecase(t)
		recipeID := uuid.New()
		profile.EXPECT().GetUserProfile(mock.Anything, owner).Return([]*entity.Recipe{
			{
				ID:     recipeID,
				UserID: owner,
				Title:  "Pancakes",
				User:   &entity.UserSummary{ID: owner, Username: "alice"},
				Comments: []*entity.Comment{
					{
						ID:        uuid.New(),
						RecipeID:  recipeID,
						UserID:    commenter,
						Content:   "Nice",
						User:      &entity.UserSummary{ID: commenter, Username: "bob"},
						CreatedAt: time.Now(),
					},
				},
			},
		}, nil)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodGet,
			target: "/api/user-config/" + owner.String(),
			params: map[string]string{userIDParam: owner.String()},
		})

		require.NoError(t, NewProfileHandler(profile).GetUserProfile(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var recipes []*entity.Recipe
		decodeBody(t, rec, &recipes)
		require.Len(t, recipes, 1)
		assert.Equal(t, "alice", recipes[0].User.Username)
		require.Len(t, recipes[0].Comments, 1)
		assert.Equal(t, "bob", recipes[0].Comments[0].User.Username)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("unknown user yields an empty list", func(t *testing.T) {
		profile := mockusecase.NewMockProfileUsecase(t)
		profile.EXPECT().GetUserProfile(mock.Anything, owner).Return([]*entity.Recipe{}, nil)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodGet,
			target: "/api/user-config/" + owner.String(),
			params: map[string]string{userIDParam: owner.String()},
		})

		require.NoError(t, NewProfileHandler(profile).GetUserProfile(c))
		assert.JSONEq(t, `[]`, string(extractData(t, rec.Body.Bytes())))
	})

	t.Run("malformed id", func(t *testing.T) {
		profile := mockusecase.NewMockProfileUsecase(t)
		c, _ := newTestContext(t, testRequest{
			method: http.MethodGet,
			target: "/api/user-config/x",
			params: map[string]string{userIDParam: "x"},
		})

		assertAppError(t, NewProfileHandler(profile).GetUserProfile(c), "VALIDATION_FAILED")
	})

	t.Run("store failure", func(t *testing.T) {
		profile := mockusecase.NewMockProfileUsecase(t)
		profile.EXPECT().GetUserProfile(mock.Anything, owner).Return(nil, domainerrors.ErrInternalError)

		c, _ := newTestContext(t, testRequest{
			method: http.MethodGet,
			target: "/api/user-config/" + owner.String(),
			params: map[string]string{userIDParam: owner.String()},
		})

		assertAppError(t, NewProfileHandler(profile).GetUserProfile(c), "INTERNAL_ERROR")
	})
}

func TestProfileHandler_GetProfileQRCode(t *testing.T) {
	userID := uuid.New()

	t.Run("serves png", func(t *testing.T) {
		profile := mockusecase.NewMockProfileUsecase(t)
		png := []byte("\x89PNG\r\n\x1a\nrest")
		profile.EXPECT().GetProfileQRCode(mock.Anything, userID).Return(png, nil)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodGet,
			target: "/api/user-config/" + userID.String() + "/qrcode",
			params: map[string]string{userIDParam: userID.String()},
		})

		require.NoError(t, NewProfileHandler(profile).GetProfileQRCode(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("unknown user", func(t *testing.T) {
		profile := mockusecase.NewMockProfileUsecase(t)
		profile.EXPECT().GetProfileQRCode(mock.Anything, userID).Return(nil, domainerrors.ErrUserNotFound)

		c, _ := newTestContext(t, testRequest{
			method: http.MethodGet,
			target: "/api/user-config/" + userID.String() + "/qrcode",
			params: map[string]string{userIDParam: userID.String()},
		})

		assertAppError(t, NewProfileHandler(profile).GetProfileQRCode(c), "USER_NOT_FOUND")
	})
}
