package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowMerge(t *testing.T) {
	row := Row{"a": int64(1), "b": "keep"}
	row.Merge(Row{"a": int64(2), "c": "new"})

	assert.Equal(t, int64(2), row["a"])
	assert.Equal(t, "keep", row["b"])
	assert.Equal(t, "new", row["c"])
}

func TestRowClone(t *testing.T) {
	row := Row{"a": int64(1)}
	clone := row.Clone()
	clone["a"] = int64(2)

	assert.Equal(t, int64(1), row["a"])
	assert.Equal(t, int64(2), clone["a"])
}

func TestPick(t *testing.T) {
	row := Row{"sid": int64(7), "state": "MA", "locationOffset": int64(-18000)}
	picked := pick(row, []string{"sid", "missing"})

	assert.Equal(t, Row{"sid": int64(7)}, picked)
}

func TestCoercingGetters(t *testing.T) {
	row := Row{
		"i64":   int64(42),
		"bytes": []byte("42"),
		"str":   "42",
		"f":     float64(42.5),
		"fb":    []byte("42.5"),
		"sb":    []byte("hello"),
		"null":  nil,
	}

	assert.Equal(t, int64(42), asInt(row, "i64"))
	assert.Equal(t, int64(42), asInt(row, "bytes"))
	assert.Equal(t, int64(42), asInt(row, "str"))
	assert.Equal(t, int64(0), asInt(row, "missing"))

	assert.Equal(t, 42.5, asFloat(row, "f"))
	assert.Equal(t, 42.5, asFloat(row, "fb"))

	assert.Equal(t, "hello", asStr(row, "sb"))
	assert.Equal(t, "", asStr(row, "i64"))

	assert.True(t, asBool(row, "i64"))
	assert.False(t, asBool(row, "missing"))

	assert.Nil(t, nullableInt(row, "null"))
	assert.Nil(t, nullableInt(row, "missing"))
	assert.Equal(t, int64(42), *nullableInt(row, "i64"))
}

func TestSetSkipsNilPointers(t *testing.T) {
	row := Row{}
	var absent *string
	present := "x"

	set(row, "a", absent)
	set(row, "b", &present)

	_, ok := row["a"]
	assert.False(t, ok)
	assert.Equal(t, "x", row["b"])
}
