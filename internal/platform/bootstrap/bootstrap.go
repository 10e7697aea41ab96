// Package bootstrap は設定に応じて社員サービスと永続化層を組み立てます。
package bootstrap

import (
	"context"
	"fmt"

	"github.com/ogurasousui/codex-employee-repository/internal/adapters/repository/sqlstore"
	"github.com/ogurasousui/codex-employee-repository/internal/core/employee"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/config"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/db"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/db/postgres"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/db/sqlite"
	"github.com/rs/zerolog"
)

// Employees は組み立て済みの社員サービスと、その接続を閉じる関数を保持します。
type Employees struct {
	Service *employee.Service
	close   func()
}

// Close は下層の接続を閉じます。
func (e *Employees) Close() {
	if e != nil && e.close != nil {
		e.close()
	}
}

// OpenEmployees は cfg.Driver に従って接続を開き、社員サービスを構築します。
func OpenEmployees(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*Employees, error) {
	var (
		exec    db.Executor
		tx      employee.TransactionManager
		closeFn func()
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		exec = postgres.NewNamedExecutor(pool)
		tx = postgres.NewTransactionManager(pool)
		closeFn = pool.Close
	case config.DriverSQLite:
		conn, err := sqlite.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		exec = sqlite.NewExecutor(conn)
		tx = sqlite.NewTransactionManager(conn)
		closeFn = func() { _ = conn.Close() }
	default:
		return nil, fmt.Errorf("bootstrap: unsupported database driver %q", cfg.Driver)
	}

	logger.Info().Str("driver", cfg.Driver).Msg("database connection established")

	repo := sqlstore.NewEmployeeRepository(exec, sqlstore.EmployeeRowMapper{})
	return &Employees{
		Service: employee.NewService(repo, tx),
		close:   closeFn,
	}, nil
}
