package handler

import (
	"net/http"

	"delishub/internal/delivery/http/response"
	"delishub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler serves the public profile view.
type ProfileHandler struct {
	profile usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(profile usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// GetUserProfile returns the user's recipes with their comments.
func (h *ProfileHandler) GetUserProfile(c echo.Context) error {
	userID, err := pathUserID(c)
	if err != nil {
		return err
	}

	recipes, err := h.profile.GetUserProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipes, "")
}

// GetProfileQRCode returns a PNG QR code linking to the user's profile page.
func (h *ProfileHandler) GetProfileQRCode(c echo.Context) error {
	userID, err := pathUserID(c)
	if err != nil {
		return err
	}

	png, err := h.profile.GetProfileQRCode(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
