// Package logger builds slog loggers with context extraction and optional
// Sentry reporting.
//
// # Basic Usage
//
//	log := logger.New(logger.Config{
//		Level:  slog.LevelInfo,
//		Format: logger.FormatJSON,
//	}, requestIDExtractor)
//
//	log.InfoContext(ctx, "request processed", slog.Int("status", 200))
//	// {"level":"INFO","msg":"request processed","status":200,"request_id":"..."}
//
// Config is parsed from the environment with github.com/caarlos0/env:
// LOG_LEVEL (debug, info, warn, error), LOG_FORMAT (json, text), SENTRY_DSN,
// SENTRY_ENVIRONMENT and SENTRY_MIN_LEVEL.
//
// # Context Extractors
//
// A ContextExtractor pulls one attribute out of the context on every log call:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Return false to skip the attribute for that record. [LogHandlerDecorator]
// applies extractors to any slog.Handler.
//
// # Sentry
//
// With a DSN set, records are sent to stdout and Sentry. Errors create Sentry
// issues; records at or above MinLevel are stored as Sentry logs. Without a DSN,
// or when the SDK fails to start, the logger writes to stdout only. Call
// [Flush] before exit.
package logger
