package vietqr

import (
	"fmt"
	"net/url"
)

// Account holds the receiving bank account details for VietQR payloads.
type Account struct {
	BankID     string // Bank short code, e.g. "MB"
	Number     string // Account number
	HolderName string // Account holder name as registered with the bank
}

// ImageURL builds the img.vietqr.io URL for a scannable payment QR code.
// Amount is whole VND; addInfo is the transfer reference note shown to the
// payer. The URL must be rebuilt whenever amount or addInfo changes; callers
// should never cache it across a cart mutation.
func ImageURL(account Account, amount int64, addInfo string) string {
	q := url.Values{}
	q.Set("amount", fmt.Sprintf("%d", amount))
	q.Set("addInfo", addInfo)
	q.Set("accountName", account.HolderName)
	return fmt.Sprintf("https://img.vietqr.io/image/%s-%s-compact2.png?%s",
		account.BankID, account.Number, q.Encode())
}
