// Package sqlite は組み込み SQLite ストアへの接続と名前付き SQL の実行を提供します。
package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/config"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/db"
)

const driverName = "sqlite3"

// Open は設定された SQLite データベースを開き疎通確認を行います。
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	conn, err := sqlx.Open(driverName, cfg.SQLiteDSN())
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", cfg.Path, err)
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}

	return conn, nil
}

var _ db.Executor = (*Executor)(nil)

// Executor は sqlx の名前付きクエリで :NAME 形式の SQL を実行します。
// コンテキストに TransactionManager のトランザクションがあればそれを使います。
type Executor struct {
	conn *sqlx.DB
}

// NewExecutor は Executor を生成します。
func NewExecutor(conn *sqlx.DB) *Executor {
	return &Executor{conn: conn}
}

// Query は query を実行し、各行を scan に渡します。
func (e *Executor) Query(ctx context.Context, query string, params db.Params, scan func(db.Row) error) error {
	rows, err := sqlx.NamedQueryContext(ctx, extFromContext(ctx, e.conn), query, namedArg(params))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}

	return rows.Err()
}

// Update は query を実行し、影響行数を返します。
func (e *Executor) Update(ctx context.Context, query string, params db.Params) (int64, error) {
	res, err := sqlx.NamedExecContext(ctx, extFromContext(ctx, e.conn), query, namedArg(params))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func namedArg(params db.Params) map[string]any {
	if params == nil {
		return map[string]any{}
	}
	return map[string]any(params)
}
