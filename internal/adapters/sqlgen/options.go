package sqlgen

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithTable sets the table name targeted by generated statements.
func WithTable(table string) Option {
	return func(g *Generator) {
		if table != "" {
			g.table = table
		}
	}
}

// WithColumns sets the id, base-value, raw-value, and raw-unit column names.
func WithColumns(id, base, raw, unitCol string) Option {
	return func(g *Generator) {
		if id != "" {
			g.idColumn = id
		}
		if base != "" {
			g.baseColumn = base
		}
		if raw != "" {
			g.rawColumn = raw
		}
		if unitCol != "" {
			g.unitColumn = unitCol
		}
	}
}
