package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	assert.Equal(t, `"plain"`, Quote("plain"))
	assert.Equal(t, `"say #quot;hi#quot;"`, Quote(`say "hi"`))
}

func TestKeyAndNumber(t *testing.T) {
	assert.Equal(t, "n12", Key("n", 12))
	assert.Equal(t, "42.5", Number(42.5))
	assert.Equal(t, "3", Number(3))
}
