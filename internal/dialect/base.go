package dialect

import (
	"fmt"
	"strings"

	"github.com/cetane-dev/cetane/internal/schema"
)

// quoteWith quotes name using the given quote rune, doubling any embedded
// occurrence of it — the standard SQL identifier-escaping rule shared by
// double-quote (Postgres/SQLite) and backtick (MySQL) dialects alike.
func quoteWith(name string, quote byte) string {
	escaped := strings.ReplaceAll(name, string(quote), string(quote)+string(quote))
	return string(quote) + escaped + string(quote)
}

// decimalSQL renders "DECIMAL(precision, scale)" the same way across
// backends that spell it identically.
func decimalSQL(t schema.FieldType) string {
	return fmt.Sprintf("DECIMAL(%d,%d)", t.Precision, t.Scale)
}

// varcharSQL renders "VARCHAR(n)".
func varcharSQL(t schema.FieldType) string {
	return fmt.Sprintf("VARCHAR(%d)", t.Length)
}
