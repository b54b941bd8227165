package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvergaraz/puntoventa/pkg/currency"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "$1200.00", currency.Format(1200))
	assert.Equal(t, "$0.00", currency.Format(0))
	assert.Equal(t, "$999.50", currency.Format(999.5))
	assert.Equal(t, "$0.99", currency.Format(0.994))
}
