package api

import (
	"net/http"

	"go.uber.org/zap"
)

// ContactHandler handles contact form submissions. Messages are logged and
// acknowledged, never persisted.
type ContactHandler struct {
	Log *zap.Logger
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Create handles POST /api/contact.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonValidationError(w, "لطفاً نام، ایمیل و پیام را وارد کنید")
		return
	}

	// The subject is optional.
	if req.Name == "" || req.Email == "" || req.Message == "" {
		jsonValidationError(w, "لطفاً نام، ایمیل و پیام را وارد کنید")
		return
	}

	h.Log.Info("new contact message",
		zap.String("name", req.Name),
		zap.String("email", req.Email),
		zap.String("subject", req.Subject),
		zap.String("message", req.Message),
	)

	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "پیام شما با موفقیت ارسال شد. به زودی با شما تماس می‌گیریم.",
	})
}
