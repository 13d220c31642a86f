package blobsign

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoAccountInfo is returned when a connection string does not contain a
// usable combination of account name and account key.
var ErrNoAccountInfo = errors.New("no valid combination of account information found")

const (
	defaultProtocol       = "https"
	defaultEndpointSuffix = "core.windows.net"
)

// accountInfo is the subset of a connection string the signer needs.
type accountInfo struct {
	name       string
	key        string
	serviceURL string // base blob endpoint, no trailing slash
}

// parseConnectionString extracts account credentials and the blob endpoint
// from a semicolon-separated connection string. Recognized keys:
// AccountName, AccountKey, DefaultEndpointsProtocol, EndpointSuffix,
// BlobEndpoint. Unknown keys are ignored.
func parseConnectionString(cs string) (accountInfo, error) {
	parts := map[string]string{}
	for _, pair := range strings.Split(cs, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return accountInfo{}, fmt.Errorf("%w: malformed segment %q", ErrNoAccountInfo, key)
		}
		parts[key] = value
	}

	name, key := parts["AccountName"], parts["AccountKey"]
	if name == "" || key == "" {
		return accountInfo{}, ErrNoAccountInfo
	}

	serviceURL := strings.TrimSuffix(parts["BlobEndpoint"], "/")
	if serviceURL == "" {
		protocol := parts["DefaultEndpointsProtocol"]
		if protocol == "" {
			protocol = defaultProtocol
		}
		suffix := parts["EndpointSuffix"]
		if suffix == "" {
			suffix = defaultEndpointSuffix
		}
		serviceURL = fmt.Sprintf("%s://%s.blob.%s", protocol, name, suffix)
	}

	return accountInfo{name: name, key: key, serviceURL: serviceURL}, nil
}
