package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"clinic/config"
	deliverycontext "clinic/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGormSlogLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return `SELECT * FROM "patients"`, 1 }

	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failure is an error", err: sql.ErrConnDone, want: "level=ERROR msg=\"Query failed\""},
		{name: "missing row is silent", err: gorm.ErrRecordNotFound},
		{name: "slow statement warns", elapsed: time.Second, want: "level=WARN msg=\"Slow query\""},
		{name: "fast statement is silent outside debug"},
		{name: "debug logs every statement", debug: true, want: "level=INFO msg=Query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newGormSlogLogger(newBufferLogger(&buf), cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), query, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "patients")
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), nil)
	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With("request_id", "req-7"))

	l.Error(ctx, "lost connection to %s", "db")

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-7")
	assert.Contains(t, scoped.String(), "lost connection to db")
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), nil)

	l.LogMode(logger.Silent).Error(context.Background(), "hidden")
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestPoolMonitor_Report(t *testing.T) {
	var buf bytes.Buffer
	m := &poolMonitor{logger: newBufferLogger(&buf)}

	m.report(context.Background(), sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
	assert.Empty(t, buf.String())

	m.report(context.Background(),
		sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond},
		sql.DBStats{WaitCount: 3, WaitDuration: 201 * time.Millisecond, InUse: 10, MaxOpenConnections: 10},
	)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=2")
	assert.Contains(t, buf.String(), "avg_wait=100ms")
}
