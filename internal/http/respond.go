package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mvergaraz/puntoventa/internal/apperr"
	"github.com/mvergaraz/puntoventa/internal/http/apierr"
	"github.com/mvergaraz/puntoventa/pkg/validator"
)

// responder centralizes JSON encoding, request decoding and error
// rendering for all handlers.
type responder struct {
	logger   *slog.Logger
	validate validator.Validator
}

func newResponder(logger *slog.Logger, validate validator.Validator) *responder {
	return &responder{
		logger:   logger,
		validate: validate,
	}
}

// JSON writes v with the given status code.
func (rp *responder) JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		rp.logger.ErrorContext(r.Context(), "error encoding response",
			slog.Any("error", err))
	}
}

// Error renders err as a client-facing error response and logs it with a
// level matching its severity.
func (rp *responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	rp.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	rp.JSON(w, r, res.StatusCode, res)
}

// DecodeValid decodes the request body into v and runs struct
// validation. Malformed bodies surface as VALIDATION errors.
func (rp *responder) DecodeValid(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.ValidationErr.WrapParent(err)
	}

	return rp.validate.Validate(v)
}
