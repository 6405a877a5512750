package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/resolutionofarevolution/conversion-engine-api/internal/user/service"
)

type fakePhoneChecker struct {
	check *service.PhoneCheck
	err   error
}

func (f *fakePhoneChecker) PhoneExists(ctx context.Context, phone string) (*service.PhoneCheck, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.check, nil
}

func doCheckPhone(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/check-phone", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CheckPhone(rec, req)
	return rec
}

func TestCheckPhoneExisting(t *testing.T) {
	h := NewHandler(&fakePhoneChecker{check: &service.PhoneCheck{Exists: true, UserID: 5}}, zap.NewNop())

	rec := doCheckPhone(t, h, `{"phone":"9000000001"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Exists bool   `json:"exists"`
		UserID *int64 `json:"user_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Exists {
		t.Error("exists = false, want true")
	}
	if resp.UserID == nil || *resp.UserID != 5 {
		t.Errorf("user_id = %v, want 5", resp.UserID)
	}
}

func TestCheckPhoneUnknown(t *testing.T) {
	h := NewHandler(&fakePhoneChecker{check: &service.PhoneCheck{Exists: false}}, zap.NewNop())

	rec := doCheckPhone(t, h, `{"phone":"0000000000"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (unknown phone is not an error)", rec.Code)
	}

	// user_id must serialize as JSON null when the phone is unknown.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(raw["exists"]) != "false" {
		t.Errorf("exists = %s, want false", raw["exists"])
	}
	if string(raw["user_id"]) != "null" {
		t.Errorf("user_id = %s, want null", raw["user_id"])
	}
}

func TestCheckPhoneEmptyPhone(t *testing.T) {
	h := NewHandler(&fakePhoneChecker{}, zap.NewNop())

	rec := doCheckPhone(t, h, `{"phone":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "phone") {
		t.Errorf("body %q does not name the phone field", rec.Body.String())
	}
}

func TestCheckPhoneInvalidJSON(t *testing.T) {
	h := NewHandler(&fakePhoneChecker{}, zap.NewNop())

	rec := doCheckPhone(t, h, `{"phone":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCheckPhoneServiceError(t *testing.T) {
	h := NewHandler(&fakePhoneChecker{err: errors.New("db down")}, zap.NewNop())

	rec := doCheckPhone(t, h, `{"phone":"9000000001"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	// Internal detail must not leak into the response body.
	if strings.Contains(rec.Body.String(), "db down") {
		t.Errorf("body %q leaks internal error detail", rec.Body.String())
	}
}
