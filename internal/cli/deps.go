package cli

import (
	"context"
	"errors"
	"os"

	"cynllun-cli/internal/leads"
	"cynllun-cli/internal/llm"

	"github.com/joho/godotenv"
)

// wizardDeps builds the optional services behind the TUI: the generation
// gateway (nil when no API key is configured; the wizard explains that
// instead of failing to start) and the lead store.
func wizardDeps() (llm.Generator, leads.Store, func(), error) {
	_ = godotenv.Load()

	var gen llm.Generator
	if c, err := llm.New(context.Background(), llm.Config{}); err == nil {
		gen = c
	} else if !errors.Is(err, llm.ErrNotConfigured) {
		return nil, nil, nil, err
	}

	if path := os.Getenv("CYNLLUN_LEADS_DB"); path != "" {
		st, err := leads.OpenSQLite(context.Background(), path)
		if err != nil {
			return nil, nil, nil, err
		}
		return gen, st, func() { _ = st.Close() }, nil
	}
	dir := envOr("CYNLLUN_DATA_DIR", ".")
	return gen, leads.FileStore{Dir: dir}, func() {}, nil
}
