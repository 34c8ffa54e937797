package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/crittersort/internal/scenario"
)

// execute runs the root command with args after restoring every flag to
// its default, since cobra keeps flag state between runs.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func simulateJSON(t *testing.T, args ...string) report {
	t.Helper()
	out, err := execute(t, append([]string{"simulate", "--json"}, args...)...)
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	return r
}

func TestSimulate_Defaults(t *testing.T) {
	r := simulateJSON(t, "--seed", "42")

	assert.Equal(t, uint64(42), r.Seed)
	assert.Equal(t, [2]float64{0, 30}, r.Domain)
	assert.Equal(t, 12, r.Cap)
	assert.Equal(t, "full", r.ScoreSet)
	assert.Equal(t, 15.0, r.Threshold)
	assert.Equal(t, 100, r.Matrix.Total())
	require.Len(t, r.Classes, 2)
	assert.Equal(t, 50, r.Classes[0].Count)
	assert.GreaterOrEqual(t, r.Split.Accuracy, r.Best.Accuracy, "the exact split is never worse than the grid")
}

func TestSimulate_SeedIsDeterministic(t *testing.T) {
	a := simulateJSON(t, "--seed", "7")
	b := simulateJSON(t, "--seed", "7")
	assert.Equal(t, a.Matrix, b.Matrix)
	assert.Equal(t, a.Classes, b.Classes)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestSimulate_ScenarioThresholdOptimize(t *testing.T) {
	r := simulateJSON(t, "--seed", "1", "--scenario", "unbalanced", "--threshold", "3")
	assert.Equal(t, "unbalanced", r.Scenario)
	assert.Equal(t, 3.0, r.Threshold)
	assert.Equal(t, 80, r.Classes[0].Count)

	r = simulateJSON(t, "--seed", "1", "--optimize")
	assert.Equal(t, r.Best.Threshold, r.Threshold)
	assert.Equal(t, r.Best.Accuracy, r.Matrix.Accuracy)
}

func TestSimulate_Width(t *testing.T) {
	r := simulateJSON(t, "--seed", "1", "--width", "80")
	assert.Equal(t, [2]float64{0, 40}, r.Domain)
	assert.Equal(t, 20.0, r.Threshold)
}

func TestSimulate_Text(t *testing.T) {
	out, err := execute(t, "simulate", "--seed", "3", "--score-set", "kept")
	require.NoError(t, err)
	assert.Contains(t, out, "scoring kept")
	assert.Contains(t, out, "accuracy=")
	assert.Contains(t, out, "Class A")
}

func TestSimulate_Errors(t *testing.T) {
	_, err := execute(t, "simulate", "--scenario", "nope")
	assert.ErrorIs(t, err, scenario.ErrUnknownScenario)

	_, err = execute(t, "simulate", "--score-set", "half")
	assert.Error(t, err)

	_, err = execute(t, "simulate", "--log-level", "loud")
	assert.Error(t, err)
}

func TestSimulate_NonFiniteThreshold(t *testing.T) {
	for _, v := range []string{"NaN", "Inf", "-Inf"} {
		out, err := execute(t, "simulate", "--seed", "1", "--json", "--threshold="+v)
		assert.ErrorContains(t, err, "finite", "threshold %s", v)
		assert.Empty(t, out, "threshold %s", v)
	}

	_, err := execute(t, "export", "--seed", "1", "--threshold", "NaN", "-o", filepath.Join(t.TempDir(), "scene.png"))
	assert.ErrorContains(t, err, "finite")
}

func TestScenarios_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	doc := `schema_version: v1.0.0
scenarios:
  - key: wide
    name: Wide open
    a: {center: 5, spread: 1, count: 10}
    b: {center: 25, spread: 1, count: 10}
    threshold: 12
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := execute(t, "scenarios", "--scenarios", path)
	require.NoError(t, err)
	assert.Contains(t, out, "easy")
	assert.Contains(t, out, "Wide open")
	assert.Contains(t, out, "12")

	r := simulateJSON(t, "--seed", "1", "--scenarios", path, "--scenario", "wide")
	assert.Equal(t, 12.0, r.Threshold)
	assert.Equal(t, 100.0, r.Matrix.Accuracy)
}

func TestScenarios_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schema_version: v2.0.0\nscenarios: []\n"), 0o644))

	_, err := execute(t, "scenarios", "--scenarios", path)
	assert.ErrorIs(t, err, scenario.ErrInvalidScenarioFile)
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.svg")
	out, err := execute(t, "export", "--seed", "1", "--out", path, "--optimize")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	_, err = execute(t, "export")
	assert.ErrorContains(t, err, "--out")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "crittersort")
}
