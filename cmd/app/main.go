package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"founderkit/cmd/fx/artifact_fx"
	"founderkit/cmd/fx/completion_fx"
	"founderkit/cmd/fx/config_fx"
	"founderkit/cmd/fx/controllers_fx"
	"founderkit/cmd/fx/db_fx"
	"founderkit/cmd/fx/logger_fx"
	"founderkit/cmd/fx/metrics_fx"
	"founderkit/cmd/fx/questionnaire_fx"
	"founderkit/cmd/fx/session_fx"
	"founderkit/cmd/fx/venture_fx"
	"founderkit/internal/infra"
	"founderkit/internal/questionnaire"
	"founderkit/pkg/config"
	"founderkit/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "founderkit",
		Short:        "Guided questionnaires and AI mentoring for early stage founders",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd(), newQuestionsCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				config_fx.Module,
				logger_fx.Module,
				db_fx.Module,
				metrics_fx.Module,
				session_fx.Module,
				venture_fx.Module,
				artifact_fx.Module,
				questionnaire_fx.Module,
				completion_fx.Module,
				controllers_fx.Module,

				fx.Invoke(StartServer),
			)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log, err := logger.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			db, err := infra.InitPostgresql(cfg.PostgresURL, log)
			if err != nil {
				return err
			}
			defer infra.ClosePostgresql(db, log)

			if err := infra.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info("Database migrated")
			return nil
		},
	}
}

func newQuestionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "questions [artifact-type]",
		Short:     "Print a question bank with its follow-up rules",
		ValidArgs: supportedTypes(),
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			types := supportedTypes()
			if len(args) == 1 {
				types = args
			}
			return printBanks(cmd.OutOrStdout(), types)
		},
	}
}

func supportedTypes() []string {
	var out []string
	for _, t := range questionnaire.SupportedArtifactTypes() {
		out = append(out, string(t))
	}
	return out
}

func printBanks(w io.Writer, types []string) error {
	banks := make(map[string][]questionnaire.Question, len(types))
	for _, t := range types {
		bank, err := questionnaire.ListQuestions(questionnaire.ArtifactType(t))
		if err != nil {
			return err
		}
		banks[t] = bank
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(banks)
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
