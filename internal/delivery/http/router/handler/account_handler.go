// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"delishub/internal/delivery/http/response"
	"delishub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler serves the self-service account mutations of the authenticated caller.
type AccountHandler struct {
	account  usecase.AccountUsecase
	deletion usecase.AccountDeletionUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(account usecase.AccountUsecase, deletion usecase.AccountDeletionUsecase) *AccountHandler {
	return &AccountHandler{
		account:  account,
		deletion: deletion,
	}
}

// UpdateProfile handles PUT update-profile.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	// An empty field means "keep the current value" and must not reach the email check.
	input.Username = blankToNil(input.Username)
	input.Email = blankToNil(input.Email)
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.account.UpdateProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile updated successfully")
}

// UpdatePassword handles PUT update-password.
func (h *AccountHandler) UpdatePassword(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdatePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.account.UpdatePassword(c.Request().Context(), userID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Confirmation(c, "Password updated successfully")
}

// UpdateEmail handles PUT update-email. A user_id in the body must name the caller.
func (h *AccountHandler) UpdateEmail(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateEmailInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}
	if input.UserID != "" {
		target, err := parseUserID(input.UserID)
		if err != nil {
			return err
		}
		if err := requireSelf(userID, target); err != nil {
			return err
		}
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.account.UpdateEmail(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Email updated successfully")
}

// DeleteAccount handles DELETE delete-account/:userId. The path ID must name the caller.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	target, err := pathUserID(c)
	if err != nil {
		return err
	}
	if err := requireSelf(userID, target); err != nil {
		return err
	}

	if err := h.deletion.DeleteAccount(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Confirmation(c, "User account deleted successfully")
}

func blankToNil(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}

	return value
}
