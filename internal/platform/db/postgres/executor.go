package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/db"
)

var _ db.Executor = (*NamedExecutor)(nil)

// NamedExecutor は :NAME 形式の SQL を $n 形式へ変換し、pgx で実行します。
//
// コンテキストにトランザクションが格納されていればそれを使い、なければプールを使います。
type NamedExecutor struct {
	pool Queryer
}

// NewNamedExecutor は NamedExecutor を生成します。
func NewNamedExecutor(pool Queryer) *NamedExecutor {
	return &NamedExecutor{pool: pool}
}

// Query は query を実行し、各行を scan に渡します。ストアのエラーはそのまま返します。
func (e *NamedExecutor) Query(ctx context.Context, query string, params db.Params, scan func(db.Row) error) error {
	sqlText, args, err := bindNamed(query, params)
	if err != nil {
		return err
	}

	exec := QueryerFromContext(ctx, e.pool)
	rows, err := exec.Query(ctx, sqlText, args...)
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
func (e *NamedExecutor) Update(ctx context.Context, query string, params db.Params) (int64, error) {
	sqlText, args, err := bindNamed(query, params)
	if err != nil {
		return 0, err
	}

	exec := QueryerFromContext(ctx, e.pool)
	tag, err := exec.Exec(ctx, sqlText, args...)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func bindNamed(query string, params db.Params) (string, []any, error) {
	if params == nil {
		params = db.Params{}
	}
	sqlText, args, err := sqlx.BindNamed(sqlx.DOLLAR, query, map[string]any(params))
	if err != nil {
		return "", nil, fmt.Errorf("postgres: bind named parameters: %w", err)
	}
	return sqlText, args, nil
}
