package diagram

import (
	"strconv"
	"strings"

	"github.com/aretw0/mermaidkit/pkg/domain"
)

var quoteEscaper = strings.NewReplacer(`"`, "#quot;")

// Quote wraps s in double quotes, escaping embedded quotes with the Mermaid
// entity code.
func Quote(s string) string {
	return `"` + quoteEscaper.Replace(s) + `"`
}

// Key returns the identifier Mermaid sees for an item: prefix followed by
// the numeric ID.
func Key(prefix string, id domain.ID) string {
	return prefix + strconv.FormatUint(uint64(id), 10)
}

// Number formats a float without trailing zeros.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
