// Package db は名前付きパラメータ (:NAME) 形式の SQL を実行するための共通契約を定義します。
package db

import "context"

// Params はプレースホルダ名から値への対応です。呼び出しごとに新しく作ります。
type Params map[string]any

// Row は結果セットの 1 行です。pgx.Rows と sqlx.Rows の双方が満たします。
type Row interface {
	Scan(dest ...any) error
}

// Executor は名前付きパラメータ付き SQL をストアに対して実行します。
type Executor interface {
	// Query は query を実行し、各行について scan を呼び出します。
	Query(ctx context.Context, query string, params Params, scan func(Row) error) error
	// Update は query を実行し、影響を受けた行数を返します。
	Update(ctx context.Context, query string, params Params) (int64, error)
}
