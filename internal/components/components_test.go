package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contour/internal/engine"
	"contour/internal/graph"
	"contour/internal/intent"
	"contour/internal/ui"
)

func TestRenderGraphDrawsAxesAndCurve(t *testing.T) {
	plot, ok := graph.Compile("x")
	require.True(t, ok)

	out := RenderGraph(plot, 40, 11)
	require.NotEmpty(t, out)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 11)
	for _, line := range lines {
		assert.Len(t, []rune(line), 40)
	}
	assert.Contains(t, out, "•")
	assert.Contains(t, out, "│")
	assert.Contains(t, out, "─")
}

func TestRenderGraphBreaksAtDiscontinuity(t *testing.T) {
	plot, ok := graph.Compile("1/x")
	require.True(t, ok)

	// Odd sample count lands one sample exactly on x=0, which is undefined
	// and must not be drawn.
	points := plot.Sample(-10, 10, 41)
	undefined := 0
	for _, p := range points {
		if !p.OK {
			undefined++
		}
	}
	assert.Equal(t, 1, undefined)

	out := RenderGraph(plot, 41, 11)
	assert.NotEmpty(t, out)
}

func TestRenderGraphTooSmall(t *testing.T) {
	plot, ok := graph.Compile("x")
	require.True(t, ok)
	assert.Empty(t, RenderGraph(plot, 4, 2))
	assert.Empty(t, RenderGraph(nil, 40, 11))
}

func TestPanelViewModes(t *testing.T) {
	panel := NewPanel(ui.ThemeCharm(), 60)

	assert.Empty(t, panel.View(engine.PanelState{Mode: engine.ModeHidden}))

	result := &intent.Result{Kind: intent.KindCalculator, Display: "5+3*2 = 11"}
	out := panel.View(engine.PanelState{
		Mode:   engine.ModeModule,
		Active: &engine.ActiveModule{Kind: intent.KindCalculator, Result: result},
	})
	assert.Contains(t, out, "5+3*2 = 11")
	assert.Contains(t, out, "enter to copy")
}

func TestPanelViewError(t *testing.T) {
	panel := NewPanel(ui.ThemeCharm(), 60)

	out := panel.View(engine.PanelState{
		Mode: engine.ModeModule,
		Active: &engine.ActiveModule{
			Kind:   intent.KindDictionary,
			Result: &intent.Result{Kind: intent.KindDictionary, Err: "lookup unavailable"},
		},
	})
	assert.Contains(t, out, "lookup unavailable")
	assert.NotContains(t, out, "enter to copy")
}

func TestPanelViewPalette(t *testing.T) {
	panel := NewPanel(ui.ThemeCharm(), 60)

	state := engine.PanelState{Mode: engine.ModeCommands}
	out := panel.View(state)
	assert.Contains(t, out, "no matching commands")
}
