// Package blobsign mints time-limited signed download links for blobs using
// the storage account's shared key. Links are read-only, https-only, and
// scoped to exactly one container/blob pair.
package blobsign

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/sas"
)

const (
	// signedVersion pins the signing scheme so emitted links do not change
	// shape when the SDK's default version moves.
	signedVersion = "2022-11-02"

	// startSkew backdates the validity window to tolerate clock drift
	// between this process and the storage service.
	startSkew = 5 * time.Minute

	// linkTTL is how long a signed link stays valid after issuance. The
	// email body promises this duration; keep the two in sync.
	linkTTL = time.Hour
)

// Signer produces signed download URLs for blobs in one storage account.
type Signer struct {
	cred       *azblob.SharedKeyCredential
	serviceURL string
	now        func() time.Time
}

// New creates a Signer from a storage account connection string.
// A connection string without a usable account name/key pair yields
// ErrNoAccountInfo.
func New(connectionString string) (*Signer, error) {
	account, err := parseConnectionString(connectionString)
	if err != nil {
		return nil, err
	}
	cred, err := azblob.NewSharedKeyCredential(account.name, account.key)
	if err != nil {
		return nil, fmt.Errorf("building shared key credential: %w", err)
	}
	return &Signer{
		cred:       cred,
		serviceURL: account.serviceURL,
		now:        time.Now,
	}, nil
}

// Sign returns the blob's base URL with a read-only SAS query appended.
// The validity window runs from startSkew before now to linkTTL after now,
// in UTC. The signature is computed locally from the shared key.
func (s *Signer) Sign(_ context.Context, container, blobName string) (string, error) {
	now := s.now().UTC()
	perms := sas.BlobPermissions{Read: true}
	values := sas.BlobSignatureValues{
		Version:       signedVersion,
		Protocol:      sas.ProtocolHTTPS,
		StartTime:     now.Add(-startSkew),
		ExpiryTime:    now.Add(linkTTL),
		Permissions:   perms.String(),
		ContainerName: container,
		BlobName:      blobName,
	}

	query, err := values.SignWithSharedKey(s.cred)
	if err != nil {
		return "", fmt.Errorf("signing download link for %s/%s: %w", container, blobName, err)
	}

	return fmt.Sprintf("%s/%s/%s?%s", s.serviceURL, container, blobName, query.Encode()), nil
}
