package scenarios

import (
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/crittersort/internal/router"
	"github.com/abhisek/crittersort/internal/scenario"
	"github.com/abhisek/crittersort/internal/screens/sorter"
	"github.com/abhisek/crittersort/internal/simulation"
)

func testDeps(t *testing.T) sorter.Deps {
	t.Helper()
	e, err := simulation.New(simulation.DefaultConfig(), rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	return sorter.Deps{Engine: e, Catalog: scenario.NewCatalog(scenario.Builtin())}
}

func TestView_ListsCatalog(t *testing.T) {
	s := New(testDeps(t))
	view := s.View(100, 40)
	for _, sc := range scenario.Builtin() {
		assert.Contains(t, view, sc.Name)
	}
	assert.Contains(t, view, "spread 2")
}

func TestEnterOpensSorterWithPreset(t *testing.T) {
	s := New(testDeps(t))
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg")

	next, ok := msg.Screen.(*sorter.SorterScreen)
	require.True(t, ok, "expected a sorter screen")
	assert.Equal(t, "tricky", next.State().Scenario)
}

func TestEmptyCatalog(t *testing.T) {
	deps := testDeps(t)
	deps.Catalog = nil
	s := New(deps)

	assert.Contains(t, s.View(80, 20), "no scenarios loaded")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}
