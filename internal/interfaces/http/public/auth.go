package public

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sngm3741/unikz/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/unikz/api/internal/public/application"
)

type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	DisplayName     string `json:"displayName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) authRegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var req registerRequest
		if err := decodeJSON(r, common.MaxRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		session, err := h.auth.Register(ctx, publicapp.RegisterCommand{
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
			DisplayName:     req.DisplayName,
		})
		if err != nil {
			h.writeAuthError(w, err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, buildSessionResponse(session))
	}
}

func (h *Handler) authLoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var req loginRequest
		if err := decodeJSON(r, common.MaxRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		session, err := h.auth.Login(ctx, req.Email, req.Password)
		if err != nil {
			h.writeAuthError(w, err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildSessionResponse(session))
	}
}

func (h *Handler) authVerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Не удалось получить данные пользователя")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"status": "ok",
			"user":   user,
		})
	}
}

// writeAuthError maps AuthErrorKind to a status code and its fixed message.
func (h *Handler) writeAuthError(w http.ResponseWriter, err error) {
	var authErr *publicapp.AuthError
	if !errors.As(err, &authErr) {
		h.logger.Printf("auth failed: %v", err)
		common.WriteError(h.logger, w, http.StatusInternalServerError, common.GenericErrorMessage)
		return
	}

	status := http.StatusInternalServerError
	switch authErr.Kind {
	case publicapp.AuthInvalidCredentials:
		status = http.StatusUnauthorized
	case publicapp.AuthEmailAlreadyRegistered:
		status = http.StatusConflict
	case publicapp.AuthInvalidEmail, publicapp.AuthWeakPassword, publicapp.AuthPasswordMismatch, publicapp.AuthPasswordTooLong:
		status = http.StatusBadRequest
	default:
		h.logger.Printf("auth failed: %v", err)
	}
	common.WriteError(h.logger, w, status, authErr.Message())
}
