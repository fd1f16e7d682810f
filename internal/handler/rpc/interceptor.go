package rpc

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"reservation-service/internal/pkg/errs"
)

// LoggingUnaryInterceptor logs one line per unary RPC with a generated
// request id, the resulting status code, and the wall time spent.
func LoggingUnaryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		requestID := generateRequestID()

		resp, err := handler(ctx, req)

		logRPC(logger, requestID, info.FullMethod, time.Since(start), err)
		return resp, err
	}
}

// LoggingStreamInterceptor is the streaming counterpart; the line is
// emitted when the stream ends.
func LoggingStreamInterceptor(logger *slog.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		requestID := generateRequestID()

		err := handler(srv, ss)

		logRPC(logger, requestID, info.FullMethod, time.Since(start), err)
		return err
	}
}

func logRPC(logger *slog.Logger, requestID, method string, duration time.Duration, err error) {
	st, _ := status.FromError(err)

	attrs := []slog.Attr{
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("code", st.Code().String()),
		slog.Duration("duration", duration),
	}
	level := slog.LevelInfo
	if err != nil {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", err.Error()))
		if st.Code() == codes.Internal {
			level = slog.LevelError
			attrs = append(attrs, slog.Any("stack", errs.ExtractStackLines(err, 10)))
		}
	}
	logger.LogAttrs(context.Background(), level, "rpc completed", attrs...)
}

func generateRequestID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(b)
}
