package log

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLogger struct {
	lines []string
}

func (l *mockLogger) Log(level Level, kvs ...interface{}) {
	builder := strings.Builder{}
	builder.WriteString(level.String())
	for i := 0; i+1 < len(kvs); i += 2 {
		builder.WriteString(fmt.Sprintf(" %v=%v", kvs[i], kvs[i+1]))
	}
	l.lines = append(l.lines, builder.String())
}

func TestWith(t *testing.T) {
	mock := &mockLogger{}
	logger, err := With(mock, "channel", "c1")
	require.NoError(t, err)
	logger, err = With(logger, "op", 2)
	require.NoError(t, err)

	logger.Log(LevelInfo, "msg", "flushed")
	assert.Equal(t, []string{"INFO channel=c1 op=2 msg=flushed"}, mock.lines)

	_, err = With(logger, "singular")
	assert.ErrorIs(t, err, ErrKvsNotInPaired)
}

func TestWithContext(t *testing.T) {
	mock := &mockLogger{}
	type ctxCntKey struct{}
	cnt := 0
	ctx := context.WithValue(context.Background(), ctxCntKey{}, &cnt)

	logger, err := WithContext(ctx, mock)
	require.NoError(t, err)
	logger, _ = With(logger, "count", Valuer(func(ctx context.Context) interface{} {
		c := ctx.Value(ctxCntKey{}).(*int)
		*c++
		return *c
	}))
	logger.Log(LevelDebug, "msg", "test1")
	logger.Log(LevelInfo, "msg", "test2")

	assert.Equal(t, []string{"DEBUG count=1 msg=test1", "INFO count=2 msg=test2"}, mock.lines)

	//nolint:staticcheck
	_, err = WithContext(nil, mock)
	assert.ErrorIs(t, err, ErrContextIsNil)
}

func TestFullLogger(t *testing.T) {
	buff := &bytes.Buffer{}
	logger := NewFullLogger(NewStdLogger(buff))

	logger.Debug("test debug")
	logger.Infof("test %s", "info")
	logger.Warnw("log", "test warn")
	logger.Errorf("test %d", 3)

	expected := strings.Join([]string{
		"DEBUG msg=test debug",
		"INFO msg=test info",
		"WARN log=test warn",
		"ERROR msg=test 3",
		"",
	}, "\n")
	assert.Equal(t, expected, buff.String())
}

func TestWithFullLogger(t *testing.T) {
	mock := &mockLogger{}
	logger, err := WithFullLogger(NewFullLogger(mock), "flag", "full")
	require.NoError(t, err)
	logger.Info("hello")
	assert.Equal(t, []string{"INFO flag=full msg=hello"}, mock.lines)
}

func TestLevel(t *testing.T) {
	tests := []struct {
		level Level
		name  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelFatal, "FATAL"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.level.String())
		assert.Equal(t, tt.level, ParseLevel(strings.ToLower(tt.name)))
	}
	assert.Equal(t, "", Level(42).String())
	assert.Equal(t, LevelInfo, ParseLevel("unknown"))
}
