package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvergaraz/puntoventa/pkg/validator"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"ana@example.com",
		"ana.morales+pos@tienda.cl",
		"a_b%c@sub.dominio.org",
	}
	for _, email := range valid {
		assert.True(t, validator.IsValidEmail(email), email)
	}

	invalid := []string{
		"not-an-email",
		"@example.com",
		"ana@example",
		"ana@.com",
		"ana@example.c",
		"",
	}
	for _, email := range invalid {
		assert.False(t, validator.IsValidEmail(email), email)
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"123456789",
		"+56 9 1234 5678",
		"(02) 555-0199",
		"", // compatibility: stored customers may have no phone
	}
	for _, phone := range valid {
		assert.True(t, validator.IsValidPhone(phone), phone)
	}

	invalid := []string{
		"llámame",
		"555-CALL",
		"123#456",
	}
	for _, phone := range invalid {
		assert.False(t, validator.IsValidPhone(phone), phone)
	}
}

func TestDefaultValidator(t *testing.T) {
	type payload struct {
		Name  string  `validate:"required"`
		Price float64 `validate:"gte=0"`
	}

	v := validator.NewDefaultValidator()

	t.Run("Should accept a valid struct", func(t *testing.T) {
		assert.NoError(t, v.Validate(payload{Name: "Teclado", Price: 10}))
	})

	t.Run("Should reject a missing required field", func(t *testing.T) {
		err := v.Validate(payload{Price: 10})
		assert.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("Should reject a negative price", func(t *testing.T) {
		assert.Error(t, v.Validate(payload{Name: "Teclado", Price: -1}))
	})
}
