package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shaharia-lab/uploadnotify/internal/blobsign"
	"github.com/shaharia-lab/uploadnotify/internal/config"
	"github.com/shaharia-lab/uploadnotify/internal/logger"
	"github.com/shaharia-lab/uploadnotify/internal/mailer"
	"github.com/shaharia-lab/uploadnotify/internal/notifier"
	"github.com/shaharia-lab/uploadnotify/internal/trigger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the notification service",
	Long:  "Start the HTTP server that receives upload trigger invocations and sends notification emails.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "HTTP server port (overrides PORT env var)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Configuration failures are fatal: the service must not start to
	// accept events with an incomplete config.
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}

	log := logger.New(os.Stdout, cfg.SlogLevel())

	signer, err := blobsign.New(cfg.ConnectionString)
	if err != nil {
		return fmt.Errorf("building link signer: %w", err)
	}

	sender := mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:     cfg.SenderHost,
		Port:     cfg.SenderPort,
		Sender:   cfg.SenderName,
		Password: cfg.SenderPass,
	})

	handler := notifier.NewHandler(cfg.ContainerName, signer, sender, log)
	srv := trigger.New(handler, cfg.Port, log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info("upload notification service starting",
		"port", cfg.Port,
		"container", cfg.ContainerName,
	)
	return srv.Run(ctx)
}
