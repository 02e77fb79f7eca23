package writer

import (
	"bytes"
	"errors"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shortWriter struct {
	buf bytes.Buffer
	max int
	err error
}

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.max {
		p = p[:w.max]
	}
	n, _ := w.buf.Write(p)
	return n, w.err
}

func TestStdWriter_WriteBuffers(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewStdWriter(buf)

	n, err := w.WriteBuffers([][]byte{[]byte("hello"), nil, []byte(" "), []byte("world")})
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, "hello world", buf.String())
}

func TestStdWriter_ShortWrite(t *testing.T) {
	sw := &shortWriter{max: 3}
	w := NewStdWriter(sw)

	n, err := w.WriteBuffers([][]byte{[]byte("ab"), []byte("cdef"), []byte("gh")})
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, 5, n)
	assert.Equal(t, "abcde", sw.buf.String())
}

func TestStdWriter_Error(t *testing.T) {
	broken := errors.New("broken pipe")
	sw := &shortWriter{max: 2, err: broken}
	w := NewStdWriter(sw)

	n, err := w.WriteBuffers([][]byte{[]byte("abcd")})
	assert.ErrorIs(t, err, broken)
	assert.Equal(t, 2, n)
}

func TestStdWriter_Conn(t *testing.T) {
	client, server := net.Pipe()
	defer func() {
		_ = server.Close()
	}()

	w := NewStdWriter(client)
	done := make(chan []byte, 1)
	go func() {
		got, _ := io.ReadAll(server)
		done <- got
	}()

	n, err := w.WriteBuffers([][]byte{[]byte("header:"), []byte("payload")})
	require.NoError(t, err)
	assert.Equal(t, 14, n)

	require.NoError(t, w.(io.Closer).Close())
	assert.Equal(t, "header:payload", string(<-done))
}

func TestStdWriter_CloseNonCloser(t *testing.T) {
	w := NewStdWriter(&bytes.Buffer{})
	assert.NoError(t, w.(io.Closer).Close())
}
