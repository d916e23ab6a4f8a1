package context

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"0b6f8c1e-7f3a-4d2b-9c55-1a2b3c4d5e6f", true},
		{"projects/x", false},
		{"trace.42:span_7", true},
		{strings.Repeat("a", MaxRequestIDLength), true},
		{strings.Repeat("a", MaxRequestIDLength+1), false},
		{"", false},
		{"with space", false},
		{"line\nbreak", false},
		{"ünicode", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidRequestID(tt.id), "id %q", tt.id)
	}
}

func TestRequestIDOrNew(t *testing.T) {
	assert.Equal(t, "req-1", RequestIDOrNew("req-1"))

	generated := RequestIDOrNew("<script>")
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}
