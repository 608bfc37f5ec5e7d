package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"cynllun-cli/internal/leads"
	"cynllun-cli/internal/llm"
	"cynllun-cli/internal/web"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string
	var leadsDB string
	var leadsDir string
	var model string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the planning HTTP API",
		Long: strings.TrimSpace(`
Run the HTTP API behind the planner: activity generation, rubric
generation and lead registration.

Generation needs GEMINI_API_KEY (a .env file next to the binary is
picked up). Without it the server still starts; the generation
endpoints report the missing configuration instead.
`),
		Example: strings.TrimSpace(`
# Serve on localhost with a JSONL lead log in the current directory
cynllun serve --addr 127.0.0.1:8787

# Keep leads in SQLite instead
cynllun serve --leads-db ./leads.db
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			log, err := newLogger(envOr("CYNLLUN_ENV", "dev"))
			if err != nil {
				return writeErr(cmd, err)
			}
			defer func() { _ = log.Sync() }()

			listenAddr := strings.TrimSpace(addr)
			if listenAddr == "" {
				return writeErr(cmd, errors.New("serve: missing --addr"))
			}

			var gen llm.Generator
			if c, err := llm.New(cmd.Context(), llm.Config{Model: model}); err == nil {
				gen = c
			} else if errors.Is(err, llm.ErrNotConfigured) {
				log.Warn("GEMINI_API_KEY not set; generation endpoints disabled")
			} else {
				return writeErr(cmd, err)
			}

			store, closeStore, err := openLeadStore(cmd.Context(), leadsDB, leadsDir)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closeStore()

			srv, err := web.NewServer(web.ServerConfig{Gen: gen, Leads: store, Log: log})
			if err != nil {
				return writeErr(cmd, err)
			}

			ln, err := net.Listen("tcp", listenAddr)
			if err != nil {
				return writeErr(cmd, err)
			}
			log.Info("api listening", zap.String("addr", ln.Addr().String()))
			return http.Serve(ln, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", envOr("CYNLLUN_ADDR", "127.0.0.1:8787"), "Bind address (host:port or :port)")
	cmd.Flags().StringVar(&leadsDB, "leads-db", envOr("CYNLLUN_LEADS_DB", ""), "SQLite file for captured leads (overrides --leads-dir)")
	cmd.Flags().StringVar(&leadsDir, "leads-dir", envOr("CYNLLUN_DATA_DIR", "."), "Directory for the JSONL lead log")
	cmd.Flags().StringVar(&model, "model", envOr("CYNLLUN_MODEL", ""), "Generation model override")
	return cmd
}

func newLogger(mode string) (*zap.Logger, error) {
	switch strings.ToLower(mode) {
	case "prod", "production":
		return zap.NewProduction()
	default:
		return zap.NewDevelopment()
	}
}

func openLeadStore(ctx context.Context, dbPath, dir string) (leads.Store, func(), error) {
	if strings.TrimSpace(dbPath) != "" {
		st, err := leads.OpenSQLite(ctx, dbPath)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { _ = st.Close() }, nil
	}
	return leads.FileStore{Dir: dir}, func() {}, nil
}
