package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestStringListRoundTrip(t *testing.T) {
	encoded := encodeStringList([]string{"a", "b"})
	require.NotNil(t, encoded)
	assert.Equal(t, `["a","b"]`, *encoded)
	assert.Equal(t, []string{"a", "b"}, decodeStringList(encoded))
}

func TestEncodeStringList_EmptyIsNull(t *testing.T) {
	assert.Nil(t, encodeStringList(nil))
	assert.Nil(t, encodeStringList([]string{}))
}

func TestDecodeStringList_FailSoft(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
	}{
		{"null column", nil},
		{"empty string", strp("")},
		{"not json", strp("not json")},
		{"wrong type", strp(`{"a":1}`)},
		{"json null", strp("null")},
		{"number", strp("42")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{}, decodeStringList(tt.raw))
		})
	}
}

func TestTryDecodeStringList_ReportsMalformed(t *testing.T) {
	_, ok := tryDecodeStringList(strp("not json"))
	assert.False(t, ok)

	_, ok = tryDecodeStringList(strp(`["fine"]`))
	assert.True(t, ok)

	// A stored empty array is well-formed, not a decode failure.
	_, ok = tryDecodeStringList(strp(`[]`))
	assert.True(t, ok)

	_, ok = tryDecodeStringList(nil)
	assert.True(t, ok)
}

func TestParseDeadline(t *testing.T) {
	assert.Nil(t, parseDeadline(""))
	assert.Nil(t, parseDeadline("next tuesday"))

	d := parseDeadline("2026-10-01")
	require.NotNil(t, d)
	assert.Equal(t, 2026, d.Year())
}
