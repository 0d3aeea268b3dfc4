package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"finitefield.org/landing-web/internal/config"
	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/handlers"
	"finitefield.org/landing-web/internal/i18n"
	"finitefield.org/landing-web/internal/observability"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	envFile string
}

// newRootCommand builds the landing CLI: serve, export and check.
func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "landing",
		Short: "Bilingual landing pages for Finite Field products",
		Long: `Serves the bilingual (zh/en) landing sites, exports them as static HTML,
and checks that every site's language pair stays in sync.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "dotenv file read before the environment")

	root.AddCommand(newServeCommand(flags))
	root.AddCommand(newExportCommand(flags))
	root.AddCommand(newCheckCommand(flags))
	return root
}

// app is the loaded configuration and content shared by every command.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	chrome *i18n.Bundle
	store  *content.Store
	pages  *handlers.Pages
}

func loadApp(flags *rootFlags) (*app, error) {
	cfg, err := config.Load(config.WithEnvFile(flags.envFile))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var logger *zap.Logger
	if cfg.Dev {
		logger = observability.NewDevelopmentLogger()
	} else {
		logger, err = observability.NewLogger(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
	}

	chrome, err := i18n.Load(i18n.Embedded(), "locales", cfg.Sites.DefaultLang)
	if err != nil {
		return nil, fmt.Errorf("load chrome strings: %w", err)
	}
	store, err := content.Load(content.Embedded(), chrome)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	if _, ok := store.Site(cfg.Sites.Default); !ok {
		return nil, fmt.Errorf("default site %q: %w", cfg.Sites.Default, content.ErrUnknownSite)
	}
	pages, err := handlers.NewPages(store, cfg)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logger, chrome: chrome, store: store, pages: pages}, nil
}
