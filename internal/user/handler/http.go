// Package handler exposes the phone-existence check over JSON HTTP.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/resolutionofarevolution/conversion-engine-api/internal/response"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/user/service"
)

// PhoneChecker is the minimal user service needed by this handler.
type PhoneChecker interface {
	PhoneExists(ctx context.Context, phone string) (*service.PhoneCheck, error)
}

// Handler serves POST /check-phone.
type Handler struct {
	svc    PhoneChecker
	logger *zap.Logger
}

// NewHandler returns a phone-check handler.
func NewHandler(svc PhoneChecker, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

type checkPhoneRequest struct {
	Phone string `json:"phone"`
}

type checkPhoneResponse struct {
	Exists bool   `json:"exists"`
	UserID *int64 `json:"user_id"`
}

// CheckPhone looks up a user by exact phone match. An unknown phone is a
// 200 with exists=false, not an error. Idempotent; creates no rows.
func (h *Handler) CheckPhone(w http.ResponseWriter, r *http.Request) {
	var req checkPhoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Phone == "" {
		response.ValidationError(w, []response.FieldError{{Field: "phone", Message: "required"}})
		return
	}

	check, err := h.svc.PhoneExists(r.Context(), req.Phone)
	if err != nil {
		if errors.Is(err, service.ErrPhoneRequired) {
			response.ValidationError(w, []response.FieldError{{Field: "phone", Message: "required"}})
			return
		}
		h.logger.Error("check phone failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := checkPhoneResponse{Exists: check.Exists}
	if check.Exists {
		id := check.UserID
		resp.UserID = &id
	}
	response.JSON(w, http.StatusOK, resp)
}
