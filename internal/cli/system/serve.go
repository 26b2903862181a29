package system

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gentleday/gentleday/internal/api"
	"github.com/gentleday/gentleday/internal/auth"
	"github.com/gentleday/gentleday/internal/cli"
	"github.com/gentleday/gentleday/internal/constants"
	"github.com/gentleday/gentleday/internal/keyring"
	"github.com/gentleday/gentleday/internal/logger"
	"github.com/gentleday/gentleday/internal/mailer"
)

type ServeCmd struct {
	Addr     string `help:"Listen address." default:":8372"`
	BaseURL  string `help:"Public base URL used in activation links." name:"base-url"`
	SMTPHost string `help:"SMTP host for activation mail (log-only mailer when empty)." name:"smtp-host" env:"GENTLEDAY_SMTP_HOST"`
	SMTPPort int    `help:"SMTP port." name:"smtp-port" env:"GENTLEDAY_SMTP_PORT" default:"587"`
	SMTPUser string `help:"SMTP username." name:"smtp-user" env:"GENTLEDAY_SMTP_USER"`
	SMTPFrom string `help:"From address for activation mail." name:"smtp-from" env:"GENTLEDAY_SMTP_FROM"`
}

func (c *ServeCmd) Run(ctx *cli.Context) error {
	secret, err := serverSecret()
	if err != nil {
		return err
	}

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost" + c.Addr
	}

	dispatcher, err := c.dispatcher()
	if err != nil {
		return err
	}

	authSvc := auth.New(ctx.Store, dispatcher, secret, baseURL)
	server := api.NewServer(api.Config{Addr: c.Addr}, ctx.Store, authSvc)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving on %s\n", c.Addr)
	return server.Run(runCtx)
}

// serverSecret resolves the HMAC key for activation tokens. A random
// per-process key means links stop working across restarts, so a
// persistent one is strongly preferred.
func serverSecret() ([]byte, error) {
	if env := os.Getenv("GENTLEDAY_SECRET"); env != "" {
		return []byte(env), nil
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate server secret: %w", err)
	}
	logger.Warn("GENTLEDAY_SECRET not set, using a random per-process secret; activation links will not survive restarts")
	return secret, nil
}

func (c *ServeCmd) dispatcher() (mailer.Dispatcher, error) {
	if c.SMTPHost == "" {
		logger.Info("no SMTP host configured, activation links are written to the log")
		return mailer.Log{}, nil
	}

	from := c.SMTPFrom
	if from == "" {
		from = constants.AppName + "@" + c.SMTPHost
	}

	password := os.Getenv("GENTLEDAY_SMTP_PASSWORD")
	if password == "" {
		stored, err := keyring.GetSMTPPassword()
		if err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return nil, err
		}
		password = stored
	}

	return mailer.NewSMTP(c.SMTPHost, c.SMTPPort, c.SMTPUser, password, from), nil
}
