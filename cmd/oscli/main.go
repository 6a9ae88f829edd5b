package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ordem_servico/internal/domain/entities"
	"ordem_servico/internal/infrastructure/config"
	"ordem_servico/internal/infrastructure/estoquefacil"
	"ordem_servico/internal/infrastructure/logging"
	"ordem_servico/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

const tokenEnv = "OS_SHOP_TOKEN"

var errMissingToken = errors.New("shop token required: use --token or " + tokenEnv)

// app holds what the subcommands share. It is built once per invocation in
// PersistentPreRunE.
type app struct {
	token   string
	apiURL  string
	verbose bool

	cfg     *config.Config
	session entities.Session
	views   *usecase.OrderViewUseCase
	clients *usecase.ClientUseCase
	flush   func()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "oscli",
		Short: "Service order back-office from the terminal",
		Long: `oscli lists, filters, exports and updates the service orders of a shop.

The shop token comes from --token or the OS_SHOP_TOKEN environment variable.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.views != nil {
				a.views.Wait()
			}
			if a.flush != nil {
				a.flush()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.token, "token", "", "shop token (default $"+tokenEnv+")")
	root.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "service order API base URL (default $ESTOQUEFACIL_API_URL)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newListCmd(a),
		newStatusCmd(a),
		newDeleteCmd(a),
		newExportCmd(a),
		newClientsCmd(a),
		newWatchCmd(a),
	)
	return root
}

func (a *app) init() error {
	a.cfg = config.Load()

	level := a.cfg.LogLevel
	if a.verbose {
		level = "debug"
	}
	_, flush, err := logging.Init(level)
	if err != nil {
		return err
	}
	a.flush = flush

	token := strings.TrimSpace(a.token)
	if token == "" {
		token = strings.TrimSpace(os.Getenv(tokenEnv))
	}
	if token == "" {
		return errMissingToken
	}
	a.session = entities.NewSession(token)

	apiURL := a.apiURL
	if apiURL == "" {
		apiURL = a.cfg.APIBaseURL
	}
	gateway := estoquefacil.NewClient(apiURL, a.cfg.HTTPClientTimeout)
	a.views = usecase.NewOrderViewUseCase(gateway, nil, nil, a.cfg.PDFBaseURL, a.cfg.CommitTimeout)
	a.clients = usecase.NewClientUseCase(gateway)
	return nil
}

// requestContext bounds one-shot commands; watch manages its own lifetime.
func (a *app) requestContext(parent context.Context) (context.Context, context.CancelFunc) {
	timeout := 30 * time.Second
	if a.cfg != nil && a.cfg.HTTPClientTimeout > 0 {
		timeout = 3 * a.cfg.HTTPClientTimeout
	}
	return context.WithTimeout(parent, timeout)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
