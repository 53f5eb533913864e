package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{"simple comparison", `level == "error"`, false},
		{"helper call", `contains(message, "underrun")`, false},
		{"time helper", `parseTime(played_at) > daysAgo(7)`, false},
		{"empty expression", "   ", true},
		{"syntax error", `level ==`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, f)
		})
	}
}

func TestMatch(t *testing.T) {
	f, err := Compile(`level == "error" and contains(message, "Buffer")`)
	require.NoError(t, err)

	matched, err := f.Match(map[string]any{"level": "error", "message": "buffer underrun"})
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = f.Match(map[string]any{"level": "info", "message": "buffer underrun"})
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestMatchNonBoolean(t *testing.T) {
	f, err := Compile(`message`)
	require.NoError(t, err)

	_, err = f.Match(map[string]any{"message": "hello"})
	assert.ErrorContains(t, err, "boolean")
}

func TestApply(t *testing.T) {
	f, err := Compile(`artist == "Miles Davis"`)
	require.NoError(t, err)

	rows := []map[string]any{
		{"artist": "Miles Davis", "title": "So What"},
		{"artist": "John Coltrane", "title": "Naima"},
		{"artist": "Miles Davis", "title": "Blue in Green"},
	}

	got, err := f.Apply(rows)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "So What", got[0]["title"])
	assert.Equal(t, "Blue in Green", got[1]["title"])
}
