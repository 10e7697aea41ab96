package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/bootstrap"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/config"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/logger"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/server"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	flag.Parse()

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.EffectivePath(*configPath)); err != nil {
		stop()
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	emps, err := bootstrap.OpenEmployees(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer emps.Close()

	grpcServer := server.New(cfg.Server.ListenAddr, emps.Service, log)

	log.Info().Str("addr", cfg.Server.ListenAddr).Msg("gRPC server listening")

	return grpcServer.Run(ctx)
}
