// Package logger は zerolog を用いたアプリケーションログを構築します。
package logger

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ogurasousui/codex-employee-repository/internal/platform/config"
	"github.com/rs/zerolog"
)

// New は設定に従って zerolog.Logger を構築します。
// 返される close 関数はログファイルを開いた場合にそれを閉じます。
func New(cfg config.LoggingConfig) (zerolog.Logger, func() error, error) {
	return build(cfg, os.Stdout)
}

func build(cfg config.LoggingConfig, stdout io.Writer) (zerolog.Logger, func() error, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("logger: parse level %q: %w", cfg.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out io.Writer = stdout
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: stdout}
	}

	closeFn := func() error { return nil }
	writers := []io.Writer{out}
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o664)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("logger: open file %s: %w", cfg.File, err)
		}
		writers = append(writers, file)
		closeFn = file.Close
	}

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return l, closeFn, nil
}

// WithContext はロガーをコンテキストに格納します。
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// FromContext はコンテキストのロガーを返します。格納されていなければ何も出力しないロガーを返します。
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
