package notifier

import "net/mail"

// IsValidEmail reports whether s is a syntactically valid RFC 5322 address.
// This is a syntax-only check: no DNS or MX lookup, no deliverability
// probing. Display-name forms ("Jo <jo@example.com>") are accepted, as the
// grammar allows them.
func IsValidEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}
