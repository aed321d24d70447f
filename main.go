package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/compose"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/view"
	"github.com/Zachkp/portfolio/internal/visitors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what every command needs once configuration is loaded.
type app struct {
	cfg *config.Config
	log logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Build and serve the single page portfolio",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Failed to load configuration: %v\n", err)
				return err
			}
			if cmd.Flags().Changed("content") {
				cfg.ContentFile, _ = cmd.Flags().GetString("content")
			}

			log, err := logger.New(logger.Config{Level: cfg.LogLevel, Development: cfg.LogDevelopment})
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Failed to create logger: %v\n", err)
				return err
			}
			a.cfg, a.log = cfg, log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().String("content", "", "YAML content file (default $PORTFOLIO_CONTENT_FILE)")

	root.AddCommand(
		newBuildCmd(a),
		newServeCmd(a),
		newStatsCmd(a),
		newValidateCmd(a),
	)
	return root
}

// run wraps a command body so failures are logged once.
func (a *app) run(name string, fn func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if err := fn(cmd); err != nil {
			a.log.Error("Command failed", logger.String("command", name), logger.Error(err))
			return err
		}
		return nil
	}
}

// composePage loads the content file and composes the page.
func (a *app) composePage() (compose.Page, error) {
	composer, err := compose.New(defaultContent())
	if err != nil {
		return compose.Page{}, err
	}
	pageCfg, err := compose.LoadPageConfig(a.cfg.ContentFile)
	if err != nil {
		return compose.Page{}, err
	}
	return composer.Page(pageCfg), nil
}

// renderPage composes and renders the page once.
func (a *app) renderPage() ([]byte, error) {
	page, err := a.composePage()
	if err != nil {
		return nil, err
	}
	renderer, err := view.New()
	if err != nil {
		return nil, err
	}
	return renderer.RenderBytes(page, view.Meta{Title: a.cfg.SiteTitle, Description: a.cfg.Description})
}

func newBuildCmd(a *app) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the page and write it with its assets to a directory",
		RunE: a.run("build", func(cmd *cobra.Command) error {
			if outDir == "" {
				outDir = a.cfg.OutDir
			}
			html, err := a.renderPage()
			if err != nil {
				return err
			}
			if err := view.WriteSite(outDir, html); err != nil {
				return err
			}
			a.log.Info("Site written", logger.String("dir", outDir), logger.Int("bytes", len(html)))
			return nil
		}),
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default $PORTFOLIO_OUT_DIR)")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the default content and the content file",
		RunE: a.run("validate", func(cmd *cobra.Command) error {
			if _, err := a.composePage(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "content ok")
			return nil
		}),
	}
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the page over HTTP",
		RunE: a.run("serve", func(cmd *cobra.Command) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		}),
	}
}

func (a *app) serve(ctx context.Context) error {
	if a.cfg.GinMode != "" {
		gin.SetMode(a.cfg.GinMode)
	}

	html, err := a.renderPage()
	if err != nil {
		return err
	}

	var (
		t     *tracker
		store *visitors.Store
	)
	if a.cfg.Tracking {
		store, err = visitors.Open(ctx, a.cfg.DBPath, a.cfg.HashSalt, a.log)
		if err != nil {
			return err
		}
		defer store.Close()

		cleanupCtx, stopCleanup := context.WithCancel(ctx)
		cleanupDone := make(chan struct{})
		go func() {
			defer close(cleanupDone)
			runCleanup(cleanupCtx, store, a.cfg.Retention, a.cfg.CleanupInterval, a.log)
		}()
		defer func() {
			stopCleanup()
			<-cleanupDone
		}()

		t = newTracker(store, a.log)
		defer t.wait()
		a.log.Info("Privacy: Visitor tracking enabled with hashed IP addresses",
			logger.Duration("retention", a.cfg.Retention),
		)
	}

	router, err := newRouter(html, t, a.cfg.TrustedProxies, a.log)
	if err != nil {
		return err
	}
	if store != nil {
		setupAdminRoutes(router, a.cfg.AdminToken, store, a.cfg.Retention, a.log)
	}

	srv := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("Server listening", logger.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newStatsCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print visitor statistics",
		RunE: a.run("stats", func(cmd *cobra.Command) error {
			store, err := visitors.Open(cmd.Context(), a.cfg.DBPath, a.cfg.HashSalt, logger.NewNop())
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}
			return printStats(cmd.OutOrStdout(), stats)
		}),
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func printStats(w io.Writer, stats *visitors.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Total visitors\t%d\n", stats.TotalVisitors)
	fmt.Fprintf(tw, "Unique visitors\t%d\n", stats.UniqueVisitors)
	fmt.Fprintf(tw, "Today\t%d\n", stats.VisitorsToday)
	fmt.Fprintf(tw, "Last 7 days\t%d\n", stats.VisitorsThisWeek)
	if len(stats.RecentVisitors) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "TIME\tVISITOR\tPATH\tUSER AGENT")
		for _, v := range stats.RecentVisitors {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.Timestamp.Format(time.RFC3339), v.HashedIP, v.Path, v.UserAgent)
		}
	}
	return tw.Flush()
}
