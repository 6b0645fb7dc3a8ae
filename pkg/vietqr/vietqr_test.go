package vietqr_test

import (
	"net/url"
	"strings"
	"testing"

	"thanhha/pkg/vietqr"

	"github.com/stretchr/testify/assert"
)

func TestImageURL(t *testing.T) {
	account := vietqr.Account{
		BankID:     "MB",
		Number:     "090123456789",
		HolderName: "NGUYEN VAN THANH HA",
	}

	raw := vietqr.ImageURL(account, 1035000, "THANH HA 0901234567")

	assert.True(t, strings.HasPrefix(raw, "https://img.vietqr.io/image/MB-090123456789-compact2.png?"))

	parsed, err := url.Parse(raw)
	assert.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, "1035000", q.Get("amount"))
	assert.Equal(t, "THANH HA 0901234567", q.Get("addInfo"))
	assert.Equal(t, "NGUYEN VAN THANH HA", q.Get("accountName"))
}

func TestImageURL_EscapesReservedCharacters(t *testing.T) {
	account := vietqr.Account{BankID: "MB", Number: "1", HolderName: "A & B"}

	raw := vietqr.ImageURL(account, 1, "note & more")

	parsed, err := url.Parse(raw)
	assert.NoError(t, err)
	assert.Equal(t, "note & more", parsed.Query().Get("addInfo"))
	assert.Equal(t, "A & B", parsed.Query().Get("accountName"))
}
