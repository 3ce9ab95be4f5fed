package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Value
	}{
		{"nil", nil, Absent()},
		{"bool", true, Bool(true)},
		{"int", 42, Int(42)},
		{"int64", int64(-10), Int(-10)},
		{"uint32", uint32(7), Int(7)},
		{"string", "toto", String("toto")},
		{"string slice", []string{"a", "b"}, List("a", "b")},
		{"any slice of strings", []any{"a", "b"}, List("a", "b")},
		{"mixed slice", []any{"a", 1}, Absent()},
		{"float", 1.5, Absent()},
		{"map", map[string]any{}, Absent()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValueOf(tt.raw))
		})
	}
}

func TestValueDisplay(t *testing.T) {
	assert.Equal(t, "", Absent().Display())
	assert.Equal(t, "true", Bool(true).Display())
	assert.Equal(t, "-10", Int(-10).Display())
	assert.Equal(t, "/backup", String("/backup").Display())
	assert.Equal(t, "[a b]", List("a", "b").Display())
}
