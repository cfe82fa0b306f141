package model

import "strconv"

// Row is one storage row as scanned by gorm into a column map. All of the
// entity models in this package work on Rows so partial updates stay
// partial: a key that was never set is never written back.
type Row map[string]any

func (r Row) Clone() Row {
	dst := make(Row, len(r))
	for k, v := range r {
		dst[k] = v
	}
	return dst
}

// Merge copies every key of updates into r, overwriting existing values.
// Keys absent from updates are left alone.
func (r Row) Merge(updates Row) {
	for k, v := range updates {
		r[k] = v
	}
}

// pick returns a copy of r restricted to cols. Keys not in cols are
// silently dropped, including derived fields that never hit the database.
func pick(r Row, cols []string) Row {
	dst := make(Row, len(cols))
	for _, c := range cols {
		if v, ok := r[c]; ok {
			dst[c] = v
		}
	}
	return dst
}

// The MySQL driver hands back a mix of integer widths, []byte and strings
// depending on column type and join provenance, so every read goes through
// a coercing getter.

func asInt(r Row, key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case uint64:
		return int64(v)
	case uint32:
		return int64(v)
	case float64:
		return int64(v)
	case []byte:
		n, _ := strconv.ParseInt(string(v), 10, 64)
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}

func asFloat(r Row, key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case []byte:
		f, _ := strconv.ParseFloat(string(v), 64)
		return f
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	}
	return 0
}

func asStr(r Row, key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

func asBool(r Row, key string) bool {
	return asInt(r, key) != 0
}

// nullableInt returns nil when the column is NULL, for output fields that
// distinguish "unset" from zero.
func nullableInt(r Row, key string) *int64 {
	if v, ok := r[key]; !ok || v == nil {
		return nil
	}
	n := asInt(r, key)
	return &n
}

// set writes *v into r[col] when v is non-nil. A nil pointer means the
// client never sent the field, so the column must stay untouched.
func set[T any](r Row, col string, v *T) {
	if v != nil {
		r[col] = *v
	}
}
