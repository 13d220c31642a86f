// Package notifier implements the upload notification handler: for each
// uploaded blob it validates the recipient address carried in the blob's
// metadata, mints a signed download link, and sends one notification email.
// Delivery is best-effort; the handler never surfaces a failure to the
// trigger runtime.
package notifier

import (
	"context"
	"io"

	"github.com/shaharia-lab/uploadnotify/internal/mailer"
)

// MetadataKeyEmail is the blob metadata key carrying the notification
// recipient. A blob uploaded without it requests no notification.
const MetadataKeyEmail = "email"

// UploadEvent is one triggering upload, as delivered by the hosting runtime.
type UploadEvent struct {
	// BlobName is the name of the uploaded object within the container.
	BlobName string

	// TriggerPath is the container/blob path the trigger matched on.
	TriggerPath string

	// Metadata is the string metadata attached to the blob at upload time.
	Metadata map[string]string

	// Content is the uploaded bytes. The handler never reads it; its
	// lifetime belongs to the trigger runtime.
	Content io.Reader
}

// LinkSigner mints a time-limited signed download URL for one
// container/blob pair.
type LinkSigner interface {
	Sign(ctx context.Context, container, blobName string) (string, error)
}

// MailSender delivers one notification email to one recipient.
type MailSender interface {
	Send(ctx context.Context, to, subject string, body mailer.Body) error
}
