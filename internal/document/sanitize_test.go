package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean", "kind: pie\n\ttitle: x\r\n", "kind: pie\n\ttitle: x\r\n"},
		{"escape sequence", "title: \x1b[31mred\x1b[0m", "title: [31mred[0m"},
		{"null and bell", "a\x00b\x07c", "abc"},
		{"unicode kept", "title: café ☕", "title: café ☕"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sanitize([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestSanitize_Rejects(t *testing.T) {
	_, err := Sanitize([]byte{0xff, 0xfe})
	assert.ErrorIs(t, err, ErrInvalidUTF8)

	t.Setenv(EnvMaxSize, "8")
	assert.Equal(t, 8, MaxSize())
	_, err = Sanitize([]byte(strings.Repeat("x", 9)))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestMaxSize_IgnoresBadOverride(t *testing.T) {
	t.Setenv(EnvMaxSize, "lots")
	assert.Equal(t, DefaultMaxSize, MaxSize())
}

func TestLoad_SanitizesInput(t *testing.T) {
	out, err := Render([]byte("kind: pie\nslices:\n  - {label: \"D\x1bogs\", value: 1}\n"), YAML)
	require.NoError(t, err)
	assert.Equal(t, "pie\n    \"Dogs\" : 1", out)

	_, err = Load([]byte{0xff}, YAML)
	assert.ErrorIs(t, err, ErrDecode)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}
