package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWraps(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := New("%w: detail %d", sentinel, 7)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "sentinel: detail 7", err.Error())
}

func TestAsError(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{name: "error", in: sentinel, want: "sentinel"},
		{name: "string", in: "boom", want: "boom"},
		{name: "other", in: 42, want: "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, AsError(tt.in), tt.want)
		})
	}
	assert.Same(t, sentinel, AsError(sentinel))
	assert.NoError(t, AsError(nil))
}
