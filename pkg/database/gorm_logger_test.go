package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newObserved(debug bool) (gormlogger.Interface, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), debug), logs
}

func trace(l gormlogger.Interface, elapsed time.Duration, err error) {
	l.Trace(context.Background(), time.Now().Add(-elapsed), func() (string, int64) {
		return "SELECT 1", 1
	}, err)
}

func TestGormLogger_ErrorsAreLogged(t *testing.T) {
	l, logs := newObserved(false)

	trace(l, time.Millisecond, errors.New("connection reset"))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.Equal(t, "SELECT 1", entries[0].ContextMap()["sql"])
	}
}

func TestGormLogger_RecordNotFoundIsQuiet(t *testing.T) {
	l, logs := newObserved(false)

	trace(l, time.Millisecond, gorm.ErrRecordNotFound)

	assert.Zero(t, logs.Len())
}

func TestGormLogger_SlowQueryWarns(t *testing.T) {
	l, logs := newObserved(false)

	trace(l, time.Second, nil)

	entries := logs.FilterMessage("Slow query").All()
	assert.Len(t, entries, 1)
}

func TestGormLogger_DebugLogsEveryStatement(t *testing.T) {
	quiet, quietLogs := newObserved(false)
	trace(quiet, time.Millisecond, nil)
	assert.Zero(t, quietLogs.Len())

	verbose, verboseLogs := newObserved(true)
	trace(verbose, time.Millisecond, nil)
	assert.Equal(t, 1, verboseLogs.FilterMessage("Query").Len())
}

func TestGormLogger_SilentMode(t *testing.T) {
	l, logs := newObserved(true)

	trace(l.LogMode(gormlogger.Silent), time.Second, errors.New("boom"))

	assert.Zero(t, logs.Len())
}
