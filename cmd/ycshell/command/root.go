// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands of the yacht
// charter owner shell. Commands are organized using the cobra library.
// The root command serves the navigation shell as a REST API, while
// the other sub-commands run one operation against the marketplace
// and print its JSON result. All commands share the same credential
// store, so a login by the CLI is visible to the served shell.
//
//	./ycshell [-c /path/of/config.yaml]              # serve the shell
//	./ycshell auth login --email ann@example.com --password secret
//	./ycshell auth status
//	./ycshell yacht list
//	./ycshell yacht delete <id> --yes
//	./ycshell dashboard
//	./ycshell discover top
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/yacht-charter/pkg/adapter/config"
	"github.com/momeni/yacht-charter/pkg/adapter/restful/gin/routes"
	"github.com/momeni/yacht-charter/pkg/core/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "ycshell",
	Short: "Owner shell of the yacht charter marketplace",
	Long: `Owner shell of the yacht charter marketplace which lets
yacht owners sign in, author and edit their yacht listings through a
multi-step workflow, upload listing images, and follow their rides
and earnings. The marketplace backend and the image host are remote
REST services, while the owner session is kept in a credential store
(a local file, a redis server, or a PostgreSQL database).
Without a sub-command, the shell is served as a REST API which a web
front-end may use.`,
	SilenceUsage: true,
	RunE:         serveShell,
}

// env is the runtime environment of one command execution.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	uc     *config.UseCases
	close  func() error
}

// setup loads the configuration file and instantiates the logger,
// the credential store, and all use cases. Callers must close the
// returned env.
func setup(ctx context.Context) (*env, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	logger := c.Log.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	store, closer, err := c.OpenCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening credential store: %w", err)
	}
	uc, err := c.NewUseCases(store)
	if err != nil {
		_ = closer()
		return nil, fmt.Errorf("creating use cases: %w", err)
	}
	return &env{cfg: c, logger: logger, uc: uc, close: closer}, nil
}

func serveShell(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(
		cmd.Context(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()
	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := e.close(); err != nil {
			log.Warn(ctx, "closing credential store", log.Err("err", err))
		}
	}()
	engine := e.cfg.NewEngine(e.logger)
	routes.Register(engine, e.uc)
	srv := &http.Server{
		Addr:              e.cfg.Shell.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(
			ctx, "serving the owner shell",
			slog.String("addr", srv.Addr),
			slog.String("prefix", routes.Prefix),
			slog.String("api", e.cfg.API.URL),
			log.Valuer("api_timeout", e.cfg.API.Timeout),
			slog.String("store", e.cfg.Store.Kind),
		)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening on %q: %w", srv.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info(ctx, "shutting down the owner shell")
		ctx, cancel := context.WithTimeout(
			context.Background(), shutdownTimeout,
		)
		defer cancel()
		return srv.Shutdown(ctx)
	})
	return g.Wait()
}

// runE adapts fn into a cobra RunE function which runs fn in a fresh
// env and prints its result as indented JSON.
func runE(
	fn func(ctx context.Context, e *env, args []string) (any, error),
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := setup(ctx)
		if err != nil {
			return err
		}
		defer e.close()
		v, err := fn(ctx, e, args)
		if err != nil {
			return err
		}
		if v == nil {
			return nil
		}
		return printJSON(cmd.OutOrStdout(), v)
	}
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		cfgPath = "configs/ycshell.yaml"
	}
}
