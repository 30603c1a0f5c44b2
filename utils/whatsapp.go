package utils

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultCountryCode is applied when normalizing local-format phone numbers.
// Overridable per call so the storefront is not hard-wired to one dialing plan.
const DefaultCountryCode = "234"

// NormalizePhone reduces a raw phone number to the digits-only international
// form wa.me expects: symbols and a leading + are stripped, a single leading 0
// (local format) is replaced by the country code, and very short numbers get
// the country code prefixed as a best effort.
func NormalizePhone(raw, countryCode string) string {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}

	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "+")

	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	s = digits.String()

	if len(s) >= 2 && s[0] == '0' {
		s = countryCode + s[1:]
	}
	if len(s) > 0 && len(s) < 9 {
		s = countryCode + s
	}

	return s
}

// BuildChatLink constructs a wa.me URL that opens a chat pre-filled with the
// given message. When the destination does not normalize to a usable digit
// string the link carries the payload only and the recipient is chosen by
// whoever opens it.
func BuildChatLink(destination, countryCode, message string) string {
	normalized := NormalizePhone(destination, countryCode)
	if normalized == "" {
		return "https://wa.me/?text=" + url.QueryEscape(message)
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", normalized, url.QueryEscape(message))
}

// OpenChatLink fires a GET at the chat link. This mirrors opening the link in
// a new browser context: a failure is logged and swallowed because the order
// is already recorded by the time the hand-off runs.
func OpenChatLink(link string) {
	resp, err := resty.New().SetTimeout(10 * time.Second).R().Get(link)
	if err != nil {
		log.Println("whatsapp hand-off failed:", err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("whatsapp hand-off returned status %d", resp.StatusCode())
	}
}
