package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	scs := Builtin()
	require.Len(t, scs, 3)

	keys := []string{scs[0].Key, scs[1].Key, scs[2].Key}
	assert.Equal(t, []string{"easy", "tricky", "unbalanced"}, keys)

	for _, sc := range scs {
		require.NoError(t, sc.A.Validate(), sc.Key)
		require.NoError(t, sc.B.Validate(), sc.Key)
		assert.NotEmpty(t, sc.Name)
	}

	unbalanced := scs[2]
	assert.Greater(t, unbalanced.A.Count, unbalanced.B.Count)
}

func TestCatalog_LookupAndOverride(t *testing.T) {
	custom := []Scenario{
		{Key: "tricky", Name: "Trickier"},
		{Key: "mine", Name: "Mine"},
	}
	c := NewCatalog(Builtin(), custom)

	require.Equal(t, 4, c.Len())
	sc, err := c.Lookup("tricky")
	require.NoError(t, err)
	assert.Equal(t, "Trickier", sc.Name)

	// Overrides keep their original position.
	second, ok := c.At(1)
	require.True(t, ok)
	assert.Equal(t, "tricky", second.Key)

	last, ok := c.At(3)
	require.True(t, ok)
	assert.Equal(t, "mine", last.Key)

	_, ok = c.At(4)
	assert.False(t, ok)

	_, err = c.Lookup("nope")
	assert.True(t, errors.Is(err, ErrUnknownScenario))
}

func TestCatalog_AllIsACopy(t *testing.T) {
	c := NewCatalog(Builtin())
	all := c.All()
	all[0].Name = "changed"

	sc, err := c.Lookup("easy")
	require.NoError(t, err)
	assert.Equal(t, "Easy separation", sc.Name)
}

const validDoc = `
schema_version: v1.2.0
scenarios:
  - key: wide
    name: Wide overlap
    description: Both herds spread across the field.
    a: {center: 10, spread: 6, count: 40}
    b: {center: 20, spread: 6.5, count: 60}
    threshold: 15
  - key: lopsided
    name: Lopsided
    a: {center: 5, spread: 1, count: 90}
    b: {center: 25, spread: 1, count: 10}
`

func TestParse_Valid(t *testing.T) {
	scs, err := Parse([]byte(validDoc))
	require.NoError(t, err)
	require.Len(t, scs, 2)

	wide := scs[0]
	assert.Equal(t, "wide", wide.Key)
	assert.Equal(t, 10.0, wide.A.Center)
	assert.Equal(t, 6.5, wide.B.Spread)
	assert.Equal(t, 60, wide.B.Count)
	require.NotNil(t, wide.Threshold)
	assert.Equal(t, 15.0, *wide.Threshold)

	assert.Nil(t, scs[1].Threshold)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "scenarios: [unterminated"},
		{"empty", ""},
		{"missing version", "scenarios:\n  - {key: a, name: A, a: {center: 1, spread: 1, count: 1}, b: {center: 2, spread: 1, count: 1}}\n"},
		{"bad version", "schema_version: one\nscenarios:\n  - {key: a, name: A, a: {center: 1, spread: 1, count: 1}, b: {center: 2, spread: 1, count: 1}}\n"},
		{"future major", "schema_version: v2.0.0\nscenarios:\n  - {key: a, name: A, a: {center: 1, spread: 1, count: 1}, b: {center: 2, spread: 1, count: 1}}\n"},
		{"negative count", "schema_version: v1.0.0\nscenarios:\n  - {key: a, name: A, a: {center: 1, spread: 1, count: -1}, b: {center: 2, spread: 1, count: 1}}\n"},
		{"negative spread", "schema_version: v1.0.0\nscenarios:\n  - {key: a, name: A, a: {center: 1, spread: -2, count: 1}, b: {center: 2, spread: 1, count: 1}}\n"},
		{"fractional count", "schema_version: v1.0.0\nscenarios:\n  - {key: a, name: A, a: {center: 1, spread: 1, count: 1.5}, b: {center: 2, spread: 1, count: 1}}\n"},
		{"unknown field", "schema_version: v1.0.0\nscenarios:\n  - {key: a, name: A, color: red, a: {center: 1, spread: 1, count: 1}, b: {center: 2, spread: 1, count: 1}}\n"},
		{"bad key", "schema_version: v1.0.0\nscenarios:\n  - {key: Bad Key, name: A, a: {center: 1, spread: 1, count: 1}, b: {center: 2, spread: 1, count: 1}}\n"},
		{"duplicate key", "schema_version: v1.0.0\nscenarios:\n  - {key: a, name: A, a: {center: 1, spread: 1, count: 1}, b: {center: 2, spread: 1, count: 1}}\n  - {key: a, name: B, a: {center: 1, spread: 1, count: 1}, b: {center: 2, spread: 1, count: 1}}\n"},
		{"no scenarios", "schema_version: v1.0.0\nscenarios: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidScenarioFile), "got %v", err)

			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o644))

	scs, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, scs, 2)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("schema_version: v3.0.0\n"), 0o644))
	_, err = Load(bad)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, bad, verr.Path)
}
