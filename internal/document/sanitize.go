package document

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxSize bounds a document to 1MB.
	DefaultMaxSize = 1 << 20
	// EnvMaxSize overrides DefaultMaxSize.
	EnvMaxSize = "MERMAIDKIT_MAX_DOCUMENT_SIZE"
)

var (
	ErrTooLarge    = errors.New("document exceeds maximum allowed size")
	ErrInvalidUTF8 = errors.New("document contains invalid UTF-8 sequences")
)

// Sanitize enforces the size limit, validates UTF-8 and strips control
// characters other than newline, tab and carriage return, so labels cannot
// smuggle escape sequences into terminals or logs.
func Sanitize(data []byte) ([]byte, error) {
	if limit := MaxSize(); len(data) > limit {
		return nil, fmt.Errorf("%w: size=%d limit=%d", ErrTooLarge, len(data), limit)
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	clean := true
	for _, r := range string(data) {
		if unicode.IsControl(r) && !isSafeControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return data, nil
	}

	out := make([]byte, 0, len(data))
	for _, r := range string(data) {
		if !unicode.IsControl(r) || isSafeControl(r) {
			out = utf8.AppendRune(out, r)
		}
	}
	return out, nil
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}

// MaxSize returns the document size limit in bytes.
func MaxSize() int {
	if val := os.Getenv(EnvMaxSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxSize
}
