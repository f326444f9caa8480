package chart

import (
	"bytes"
	"html/template"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamdash/domain/team"
	"teamdash/internal/errors"
	"teamdash/internal/logger"
	"teamdash/models"
)

func newTestRenderer(t *testing.T, width, height int) *Renderer {
	t.Helper()
	r, err := NewRenderer(width, height, logger.NewNop())
	require.NoError(t, err)
	return r
}

func TestRender_ProducesPNGOfConfiguredSize(t *testing.T) {
	r := newTestRenderer(t, DefaultWidth, DefaultHeight)

	out, err := r.Render([]string{"Eng", "PM"}, []float64{2, 1}, "$15,000")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, img.Bounds().Dx())
	assert.Equal(t, DefaultHeight, img.Bounds().Dy())

	// background stays transparent
	_, _, _, a := img.At(0, img.Bounds().Dy()-1).RGBA()
	assert.Zero(t, a)
}

func TestRender_EmptyInput(t *testing.T) {
	r := newTestRenderer(t, 320, 200)

	out, err := r.Render(nil, nil, "$0")
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
}

func TestRender_LongLabelsAreShortened(t *testing.T) {
	r := newTestRenderer(t, 320, 200)
	categories := []string{
		strings.Repeat("Principal Staff Engineer ", 4),
		strings.Repeat("Head of Developer Relations ", 4),
		"QA",
	}

	_, err := r.Render(categories, []float64{1, 2, 3}, "$1")
	assert.NoError(t, err)
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		categories []string
		counts     []float64
	}{
		{"zero width", 0, 500, []string{"Eng"}, []float64{1}},
		{"negative height", 832, -1, []string{"Eng"}, []float64{1}},
		{"too small to plot", 80, 80, []string{"Eng"}, []float64{1}},
		{"mismatched lengths", 832, 500, []string{"Eng", "PM"}, []float64{1}},
		{"negative count", 832, 500, []string{"Eng"}, []float64{-1}},
		{"too many pixels", 1 << 31, 1 << 31, []string{"Eng"}, []float64{1}},
		{"just over the pixel cap", MaxPixels/500 + 1, 500, []string{"Eng"}, []float64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRenderer(t, tt.width, tt.height)

			_, err := r.Render(tt.categories, tt.counts, "$0")
			require.Error(t, err)
			assert.Equal(t, errors.CodeRenderError, errors.GetCode(err))
		})
	}
}

func TestRenderHTML_EmbedsImage(t *testing.T) {
	r := newTestRenderer(t, DefaultWidth, DefaultHeight)

	html := string(r.RenderHTML([]string{"Eng"}, []float64{3}, "$9,000"))
	assert.True(t, strings.HasPrefix(html, `<img src="data:image/png;base64,`))
	assert.Contains(t, html, `width="832"`)
}

func TestRenderHTML_DegradesToPlaceholder(t *testing.T) {
	log, logs := logger.NewObserved()
	r, err := NewRenderer(0, 0, log)
	require.NoError(t, err)

	assert.Equal(t, Placeholder, r.RenderHTML([]string{"Eng"}, []float64{1}, "$1"))
	assert.Equal(t, 1, logs.FilterMessage("chart rendering failed, using placeholder").Len())
}

func TestRenderHTML_OversizedDegradesToPlaceholder(t *testing.T) {
	r := newTestRenderer(t, 1<<31, 1<<31)

	var html template.HTML
	require.NotPanics(t, func() {
		html = r.RenderHTML([]string{"Eng"}, []float64{1}, "$1")
	})
	assert.Equal(t, Placeholder, html)
}

func TestRenderSummary(t *testing.T) {
	r := newTestRenderer(t, DefaultWidth, DefaultHeight)
	summary := team.Aggregate([]models.Person{
		{Name: "Ana", Title: "Eng", Compensation: 5000},
		{Name: "Bo", Title: "PM", Compensation: 6000},
		{Name: "Cy", Title: "Eng", Compensation: 4000},
	})

	assert.NotEqual(t, Placeholder, r.RenderSummary(summary))

	out, err := r.RenderSummaryPNG(summary)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
