// Package model contains domain models passed between layers.
package model

// TestResult is an immutable historical measurement as read from legacy
// storage: a raw value plus whatever free-text unit label was captured with
// it, or none at all.
type TestResult struct {
	ID    string  `json:"id"`
	Key   string  `json:"key"`   // metric key, e.g. "body_weight"
	Value float64 `json:"value"` // raw value as stored
	Units *string `json:"units"` // free-text unit label, nil when unlabeled
}

// MigratedResult is the output of migrating a TestResult. ValueRaw and
// UnitRaw are the audit trail and always equal the original input exactly;
// ValueBase is the converted (or passed-through) value in the family's base
// unit. Immutable once created.
type MigratedResult struct {
	ID        string  `json:"id"`
	ValueBase float64 `json:"value_base"`
	ValueRaw  float64 `json:"value_raw"`
	UnitRaw   *string `json:"unit_raw"`
}
