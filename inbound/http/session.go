package http

import (
	"encoding/json"
	"errors"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"nightlife-booking/common"
	"nightlife-booking/common/constant"
	"nightlife-booking/common/errs"
	"nightlife-booking/model"
	"nightlife-booking/session"
)

type SessionHttp struct {
	Store    *session.Store
	Validate *validator.Validate

	jwtSecret string
}

func RegisterSessionHttp(mux *http.ServeMux, store *session.Store, validate *validator.Validate, jwtSecret string) *SessionHttp {
	in := &SessionHttp{
		Store:     store,
		Validate:  validate,
		jwtSecret: jwtSecret,
	}

	mux.HandleFunc("POST /api/session", in.save)
	mux.HandleFunc("GET /api/session", in.load)
	mux.HandleFunc("DELETE /api/session", in.clear)

	return in
}

// save persists the whole identity in one write after login, replacing the
// old per-field device-storage calls.
func (in *SessionHttp) save(w http.ResponseWriter, r *http.Request) {
	var req model.SaveSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	claims, err := session.ParseToken(req.Token, in.jwtSecret)
	if err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusUnauthorized, Message: "Invalid token"})
		return
	}

	ctx := r.Context()

	err = in.Store.Persist(ctx, claims.AccountID, map[string]string{
		"email":  req.Email,
		"token":  req.Token,
		"role":   req.Role,
		"avatar": req.Avatar,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to persist session", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, model.Session{
		AccountID: claims.AccountID,
		Email:     req.Email,
		Token:     req.Token,
		Role:      req.Role,
		Avatar:    req.Avatar,
	})
}

func (in *SessionHttp) load(w http.ResponseWriter, r *http.Request) {
	auth, ok := requireAuth(w, r)
	if !ok {
		return
	}

	ctx := r.Context()

	sess, err := in.Store.Load(ctx, auth.Claims.AccountID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Session not found"})
			return
		}

		slog.ErrorContext(ctx, "failed to load session", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, sess)
}

func (in *SessionHttp) clear(w http.ResponseWriter, r *http.Request) {
	auth, ok := requireAuth(w, r)
	if !ok {
		return
	}

	ctx := r.Context()

	if err := in.Store.Clear(ctx, auth.Claims.AccountID); err != nil {
		slog.ErrorContext(ctx, "failed to clear session", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, nil)
}
