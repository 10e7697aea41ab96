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
	"github.com/rs/zerolog"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
		fixturePath = flag.String("file", "assets/seeds/employees.yaml", "YAML fixture containing employees")
	)
	flag.Parse()

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.EffectivePath(*configPath), *fixturePath); err != nil {
		stop()
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("seed failed")
	}
}

func run(ctx context.Context, cfgPath, fixturePath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	inputs, err := loadFixture(fixturePath)
	if err != nil {
		return err
	}

	emps, err := bootstrap.OpenEmployees(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer emps.Close()

	n, err := emps.Service.ImportEmployees(ctx, inputs)
	if err != nil {
		return err
	}

	log.Info().Int("count", n).Str("file", fixturePath).Msg("employees imported")
	return nil
}
