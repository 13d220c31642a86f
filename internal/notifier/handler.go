package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shaharia-lab/uploadnotify/internal/mailer"
)

// errNoRecipient signals that the blob carries no email metadata key.
var errNoRecipient = errors.New("no recipient requested")

// invalidRecipientError signals that the email metadata value does not parse
// as an address.
type invalidRecipientError struct {
	addr string
}

func (e *invalidRecipientError) Error() string {
	return fmt.Sprintf("recipient %q is not a valid email address", e.addr)
}

// Handler reacts to upload events. Safe for concurrent use: all fields are
// set at construction and never mutated.
type Handler struct {
	container string
	signer    LinkSigner
	sender    MailSender
	logger    *slog.Logger
}

// NewHandler creates a Handler for one container.
func NewHandler(container string, signer LinkSigner, sender MailSender, logger *slog.Logger) *Handler {
	return &Handler{
		container: container,
		signer:    signer,
		sender:    sender,
		logger:    logger,
	}
}

// Handle processes one upload event. It never returns an error: skipped and
// failed notifications are converted into exactly one log event each, and
// the trigger runtime observes success regardless.
func (h *Handler) Handle(ctx context.Context, ev UploadEvent) {
	log := h.logger.With(
		slog.String("container", h.container),
		slog.String("blob", ev.BlobName),
	)
	log.Info("blob upload received")

	recipient, err := h.process(ctx, ev)

	var invalid *invalidRecipientError
	switch {
	case err == nil:
		log.Info("notification email sent", slog.String("recipient", recipient))
	case errors.Is(err, errNoRecipient):
		log.Warn("no recipient email in blob metadata, skipping notification")
	case errors.As(err, &invalid):
		log.Warn("recipient email is not a valid address, skipping notification",
			slog.String("recipient", invalid.addr))
	default:
		log.Error("failed to send notification email", slog.String("error", err.Error()))
	}
}

// process runs the validate -> sign -> send sequence and returns the
// recipient on success. Each step runs once; there are no retries.
func (h *Handler) process(ctx context.Context, ev UploadEvent) (string, error) {
	recipient, ok := ev.Metadata[MetadataKeyEmail]
	if !ok {
		return "", errNoRecipient
	}
	if !IsValidEmail(recipient) {
		return "", &invalidRecipientError{addr: recipient}
	}

	link, err := h.signer.Sign(ctx, h.container, ev.BlobName)
	if err != nil {
		return "", fmt.Errorf("signing download link: %w", err)
	}

	body, err := mailer.BuildBody(ev.BlobName, link)
	if err != nil {
		return "", fmt.Errorf("rendering notification body: %w", err)
	}

	if err := h.sender.Send(ctx, recipient, mailer.Subject, body); err != nil {
		return "", fmt.Errorf("sending notification: %w", err)
	}
	return recipient, nil
}
