package currency_test

import (
	"testing"

	"thanhha/pkg/currency"

	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "0 ₫", currency.FormatVND(0))
	assert.Equal(t, "35.000 ₫", currency.FormatVND(35000))
	assert.Equal(t, "1.500.000 ₫", currency.FormatVND(1500000))
}
