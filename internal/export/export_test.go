package export

import (
	"bytes"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/crittersort/internal/dataset"
	"github.com/abhisek/crittersort/internal/simulation"
	"github.com/abhisek/crittersort/internal/stacking"
)

func testState(t *testing.T) (simulation.State, simulation.Config) {
	t.Helper()
	cfg := simulation.DefaultConfig()
	e, err := simulation.New(cfg, rand.New(rand.NewPCG(5, 5)))
	require.NoError(t, err)
	s, err := e.Initial()
	require.NoError(t, err)
	return s, cfg
}

func TestScene(t *testing.T) {
	s, cfg := testState(t)
	p, err := Scene(s, cfg, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, p.Title.Text, "accuracy")
	assert.Equal(t, 30.0, p.X.Max)
	assert.Equal(t, 12.0, p.Y.Max)
}

func TestWrite_PNG(t *testing.T) {
	s, cfg := testState(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "png", s, cfg, DefaultOptions()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), "expected a PNG header")
}

func TestSave(t *testing.T) {
	s, cfg := testState(t)
	path := filepath.Join(t.TempDir(), "scene.svg")
	require.NoError(t, Save(path, s, cfg, DefaultOptions()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSave_UnknownFormat(t *testing.T) {
	s, cfg := testState(t)
	err := Save(filepath.Join(t.TempDir(), "scene.bmp"), s, cfg, DefaultOptions())
	assert.ErrorContains(t, err, "unsupported image format")
}

func TestSceneX_SideOfThreshold(t *testing.T) {
	// 4.7 rounds into column 5 but is predicted A at threshold 5.
	pp := stacking.PositionedPoint{Point: dataset.Point{Value: 4.7, Label: dataset.LabelA}}
	assert.Less(t, sceneX(pp, dataset.RoundReal), 5.0)
	assert.Equal(t, 4.7, sceneX(pp, dataset.RoundReal))

	pp.Value = 5
	assert.Equal(t, 5.5, sceneX(pp, dataset.RoundInteger))
}

func TestScene_RealRounding(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Rounding = dataset.RoundReal
	e, err := simulation.New(cfg, rand.New(rand.NewPCG(9, 9)))
	require.NoError(t, err)
	s, err := e.Initial()
	require.NoError(t, err)

	_, err = Scene(s, cfg, DefaultOptions())
	require.NoError(t, err)
}
