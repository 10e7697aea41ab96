package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/logger"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const requestIDHeader = "x-request-id"

// LoggingUnaryInterceptor はリクエスト ID 付きのロガーをコンテキストに格納し、呼び出し結果を記録します。
func LoggingUnaryInterceptor(base zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		requestID := requestIDFromMetadata(ctx)
		l := base.With().
			Str("request_id", requestID).
			Str("method", info.FullMethod).
			Logger()
		ctx = logger.WithContext(ctx, l)

		start := time.Now()
		resp, err := next(ctx, req)
		code := status.Code(err)

		event := l.Info()
		switch code {
		case codes.OK, codes.NotFound, codes.InvalidArgument, codes.AlreadyExists:
		default:
			event = l.Error().Err(err)
		}
		event.
			Str("code", code.String()).
			Dur("duration", time.Since(start)).
			Msg("grpc call")

		return resp, err
	}
}

func requestIDFromMetadata(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(requestIDHeader); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return uuid.NewString()
}
