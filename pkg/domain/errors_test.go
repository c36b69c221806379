package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MatchesSentinel(t *testing.T) {
	err := NewError(CodeForeignItem, "from", "reference was not created by this diagram")

	assert.ErrorIs(t, err, ErrForeignItem)
	assert.NotErrorIs(t, err, ErrWhiteSpace)
	assert.Equal(t, "FOREIGN_ITEM: from: reference was not created by this diagram", err.Error())
}

func TestCodeOf_UnwrapsChain(t *testing.T) {
	inner := NewError(CodeOutOfRange, "score", "must be between 1 and 5 (got 9)")
	wrapped := fmt.Errorf("section %q: %w", "Work", inner)

	assert.Equal(t, CodeOutOfRange, CodeOf(wrapped))
	assert.True(t, IsCode(wrapped, CodeOutOfRange))
	assert.Equal(t, Code(""), CodeOf(errors.New("plain")))
}

func TestSymbols_Lookup(t *testing.T) {
	type dir int
	table := Symbols[dir]{0: "TD", 1: "LR"}

	tok, ok := table.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "LR", tok)

	_, ok = table.Lookup(5)
	assert.False(t, ok)
	assert.Panics(t, func() { table.MustLookup(5) })
}

func TestOpen_LineDropsEmptyParts(t *testing.T) {
	b := &Block{Name: "state", Open: "state", Suffix: "{", Close: "}"}
	assert.Equal(t, "state s1 {", Open{Block: b, Text: "s1"}.Line())
	assert.Equal(t, "root", Open{Block: &Block{}, Text: "root"}.Line())
	assert.Equal(t, "--", Continue{Keyword: "--"}.Line())
	assert.Equal(t, "else ok", Continue{Keyword: "else", Text: "ok"}.Line())
}
