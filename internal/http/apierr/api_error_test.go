package apierr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvergaraz/puntoventa/internal/apperr"
	"github.com/mvergaraz/puntoventa/internal/http/apierr"
	"github.com/mvergaraz/puntoventa/pkg/zerror"
)

func TestNew(t *testing.T) {
	t.Run("Should map not found errors to 404", func(t *testing.T) {
		res := apierr.New(apperr.ProductNotFoundErr)

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Equal(t, "PRODUCT_NOT_FOUND", res.Code)
		assert.Equal(t, "Producto no encontrado", res.Message)
	})

	t.Run("Should map validation errors to 400", func(t *testing.T) {
		res := apierr.New(apperr.InsufficientStock("Teclado"))

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, "INSUFFICIENT_STOCK", res.Code)
		assert.Contains(t, res.Message, "Teclado")
	})

	t.Run("Should map wrapped zerrors through errors.As", func(t *testing.T) {
		wrapped := apperr.ValidationErr.WrapParent(errors.New("bad payload"))
		res := apierr.New(wrapped)

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, "VALIDATION_FAILED", res.Code)
	})

	t.Run("Should hide unknown errors behind a 500", func(t *testing.T) {
		res := apierr.New(errors.New("disk on fire"))

		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		assert.Equal(t, "internalServerError", res.Code)
	})
}

func TestZErrorStatusToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, apierr.ZErrorStatusToHTTPStatus(zerror.StatusNotFound))
	assert.Equal(t, http.StatusBadRequest, apierr.ZErrorStatusToHTTPStatus(zerror.StatusValidationFailed))
	assert.Equal(t, http.StatusBadRequest, apierr.ZErrorStatusToHTTPStatus(zerror.StatusBadRequest))
	assert.Equal(t, http.StatusConflict, apierr.ZErrorStatusToHTTPStatus(zerror.StatusConflict))
	assert.Equal(t, http.StatusInternalServerError, apierr.ZErrorStatusToHTTPStatus(zerror.StatusUnknown))
}
