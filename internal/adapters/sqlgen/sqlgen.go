// Package sqlgen emits SQL UPDATE statements for migrated measurement
// records, for operators who apply migrations through an offline script
// rather than a live database connection.
package sqlgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/uom/internal/domain/model"
)

// Default column and table names match the repository adapter's schema.
const (
	defaultTable      = "test_results"
	defaultIDColumn   = "id"
	defaultBaseColumn = "value_base"
	defaultRawColumn  = "value_raw"
	defaultUnitColumn = "unit_raw"
)

// Generator renders UPDATE statements for migrated results.
type Generator struct {
	table      string
	idColumn   string
	baseColumn string
	rawColumn  string
	unitColumn string
}

// New creates a Generator with configuration options.
func New(opts ...Option) *Generator {
	g := &Generator{
		table:      defaultTable,
		idColumn:   defaultIDColumn,
		baseColumn: defaultBaseColumn,
		rawColumn:  defaultRawColumn,
		unitColumn: defaultUnitColumn,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// UpdateStatements renders one UPDATE per migrated result, in input order.
// String values are single-quoted with embedded quotes doubled; a missing
// raw unit is emitted as a NULL literal.
func (g *Generator) UpdateStatements(results []model.MigratedResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, fmt.Sprintf(
			"UPDATE %s SET %s = %s, %s = %s, %s = %s WHERE %s = %s;",
			g.table,
			g.baseColumn, formatFloat(r.ValueBase),
			g.rawColumn, formatFloat(r.ValueRaw),
			g.unitColumn, quoteOrNull(r.UnitRaw),
			g.idColumn, quote(r.ID),
		))
	}
	return out
}

// quote single-quotes a string value, doubling embedded single quotes.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// quoteOrNull quotes a string value or emits a NULL literal for nil.
func quoteOrNull(s *string) string {
	if s == nil {
		return "NULL"
	}
	return quote(*s)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
