package handler

import (
	"net/http"

	"delishub/internal/delivery/http/response"
	"delishub/internal/domain/entity"
	"delishub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PresenceHandler answers presence lookups over plain HTTP.
type PresenceHandler struct {
	presence usecase.PresenceUsecase
}

// NewPresenceHandler is the constructor for PresenceHandler, injected by Fx.
func NewPresenceHandler(presence usecase.PresenceUsecase) *PresenceHandler {
	return &PresenceHandler{presence: presence}
}

// onlineUsers is the body of the online-users listing.
type onlineUsers struct {
	UserIDs []uuid.UUID `json:"user_ids"`
}

// GetPresence reports whether one user is online.
func (h *PresenceHandler) GetPresence(c echo.Context) error {
	userID, err := pathUserID(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, entity.PresenceStatus{
		UserID: userID,
		Online: h.presence.IsOnline(userID),
	}, "")
}

// ListOnline returns every online user.
func (h *PresenceHandler) ListOnline(c echo.Context) error {
	userIDs := h.presence.OnlineUsers()
	if userIDs == nil {
		userIDs = []uuid.UUID{}
	}

	return response.Success(c, http.StatusOK, onlineUsers{UserIDs: userIDs}, "")
}
