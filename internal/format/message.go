package format

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultCustomer replaces a blank owner name in outgoing messages.
const DefaultCustomer = "Pelanggan"

const statusTemplate = "✅ Done , Barang servisan milik %s telah selesai diperbaiki dengan Total harga perbaikan senilai %s. " +
	"Mohon untuk menyimpan struk ini , jika hilang garansi tidak berlaku"

// StatusMessage is the "repair finished" text sent to the owner.
func StatusMessage(owner string, grandTotal int64) string {
	if strings.TrimSpace(owner) == "" {
		owner = DefaultCustomer
	}

	return fmt.Sprintf(statusTemplate, owner, Currency(grandTotal))
}

// DeepLink builds a messaging "send" link for an already normalized phone.
func DeepLink(baseURL, phone, text string) string {
	return baseURL + "?phone=" + phone + "&text=" + encodeComponent(text)
}

// componentUnescape undoes QueryEscape for the characters a URI component
// leaves alone: !'()* stay literal and spaces become %20.
var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent percent-encodes s the way encodeURIComponent does.
func encodeComponent(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}
