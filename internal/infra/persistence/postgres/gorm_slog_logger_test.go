package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"delishub/config"
	deliverycontext "delishub/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const tracedSQL = `UPDATE "users" SET "password_hash"=$1 WHERE "id" = $2`

func newTestGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var logs bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg), &logs
}

func traced() (string, int64) {
	return tracedSQL, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	fast := func() time.Time { return time.Now() }
	slow := func() time.Time { return time.Now().Add(-time.Second) }

	tests := []struct {
		name     string
		debug    bool
		begin    func() time.Time
		err      error
		wantLog  bool
		contains []string
	}{
		{
			name:  "record not found is not an error worth logging",
			begin: fast,
			err:   errors.Wrap(gorm.ErrRecordNotFound, "find user"),
		},
		{
			name:     "failed query is logged with its sql",
			begin:    fast,
			err:      errors.New("connection reset"),
			wantLog:  true,
			contains: []string{`"level":"ERROR"`, `"msg":"GORM query failed"`, `"error":"connection reset"`, `"password_hash\"=$1`},
		},
		{
			name:     "slow query is a warning",
			begin:    slow,
			wantLog:  true,
			contains: []string{`"level":"WARN"`, `"msg":"GORM slow query"`, `"slowThreshold"`},
		},
		{
			name:  "fast query is quiet outside debug",
			begin: fast,
		},
		{
			name:     "fast query is traced in debug",
			debug:    true,
			begin:    fast,
			wantLog:  true,
			contains: []string{`"level":"INFO"`, `"msg":"GORM query"`, `"rows":1`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, logs := newTestGormLogger(tt.debug)

			l.Trace(context.Background(), tt.begin(), traced, tt.err)

			if !tt.wantLog {
				assert.Empty(t, logs.String())
				return
			}
			for _, want := range tt.contains {
				assert.Contains(t, logs.String(), want)
			}
		})
	}
}

func TestGormSlogLogger_SilentModeLogsNothing(t *testing.T) {
	l, logs := newTestGormLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now().Add(-time.Second), traced, errors.New("boom"))

	assert.Empty(t, logs.String())
}

func TestGormSlogLogger_LogModeDoesNotMutateOriginal(t *testing.T) {
	l, logs := newTestGormLogger(false)

	_ = l.LogMode(logger.Info)
	l.Trace(context.Background(), time.Now(), traced, nil)

	assert.Empty(t, logs.String())
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, base := newTestGormLogger(false)

	var requestLogs bytes.Buffer
	requestLogger := slog.New(slog.NewJSONHandler(&requestLogs, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	l.Trace(ctx, time.Now(), traced, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, requestLogs.String(), `"request_id":"req-42"`)
	assert.Contains(t, requestLogs.String(), "GORM query failed")
}

func TestGormSlogLogger_ParamsFilterWithholdsBindValues(t *testing.T) {
	l, _ := newTestGormLogger(true)

	filter, ok := l.(gorm.ParamsFilter)
	if !assert.True(t, ok) {
		return
	}

	sql, params := filter.ParamsFilter(context.Background(), tracedSQL, "$2a$10$hash", "user-id")

	assert.Equal(t, tracedSQL, sql)
	assert.Nil(t, params)
}

func TestGormSlogLogger_Messages(t *testing.T) {
	l, logs := newTestGormLogger(false)

	l.Info(context.Background(), "opened %s", "pool")
	assert.Empty(t, logs.String())

	l.Warn(context.Background(), "retrying %d", 2)
	assert.Contains(t, logs.String(), `"message":"retrying 2"`)
}
