package blobsign

import "time"

// ExportedParseConnectionString exposes parseConnectionString for external
// tests, returning the derived service URL.
func ExportedParseConnectionString(cs string) (string, error) {
	account, err := parseConnectionString(cs)
	return account.serviceURL, err
}

// ExportedSetClock pins the signer's clock for external tests.
func (s *Signer) ExportedSetClock(now func() time.Time) {
	s.now = now
}
