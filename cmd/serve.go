package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mkravets/talentscout/internal/ai/gemini"
	"github.com/mkravets/talentscout/internal/httpapi"
	"github.com/mkravets/talentscout/internal/logger"
)

const defaultListen = ":8000"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the question-generation and candidate-saving HTTP API",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "listen address. Default is :8000.")
	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	apiKey, err := resolveAPIKey(config)
	if err != nil {
		logger.Fatal("loading gemini api key", zap.Error(err))
	}

	client, err := gemini.NewClient(ctx, apiKey, geminiModel(config), logger)
	if err != nil {
		logger.Fatal("creating gemini client", zap.Error(err))
	}

	addr := viper.GetString("listen")
	if addr == "" {
		addr = config.Listen
	}
	if addr == "" {
		addr = defaultListen
	}

	api := httpapi.New(client, dataFile(config), logger)

	server := &http.Server{
		Addr:              addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting the talentscout api", zap.String("addr", addr), zap.String("version", version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serving", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutting down", zap.Error(err))
	}

	logger.Info("stopped")
}
