package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"teamdash/domain/team"
	"teamdash/internal/errors"
	"teamdash/internal/logger"
)

// Placeholder is shown in place of the chart when rendering fails
const Placeholder = template.HTML(`<p>Error generating chart</p>`)

const (
	DefaultWidth  = 832
	DefaultHeight = 500

	// MaxPixels caps width*height; larger images cannot be allocated safely
	MaxPixels = 1 << 26

	labelSize   = 14
	captionSize = 18
	marginX     = 48
	marginTop   = 72
	marginBelow = 48
)

// Dark palette, cycled per bar
var barColors = []string{
	"#4992ff", "#7cffb2", "#fddd60", "#ff6e76", "#58d9f9",
	"#05c091", "#ff8a45", "#8d48e3", "#dd79ff",
}

const (
	textColor = "#d8d9da"
	axisColor = "#6e7079"
)

// Renderer draws title histograms as PNG bar charts.
// It is safe for concurrent use.
type Renderer struct {
	width   int
	height  int
	regular *truetype.Font
	bold    *truetype.Font
	log     *logger.Logger
}

// NewRenderer creates a renderer producing width x height images.
// Dimensions are checked at render time so a bad size degrades to the
// placeholder instead of failing startup.
func NewRenderer(width, height int, log *logger.Logger) (*Renderer, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.RenderError("failed to parse regular font", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, errors.RenderError("failed to parse bold font", err)
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Renderer{
		width:   width,
		height:  height,
		regular: regular,
		bold:    bold,
		log:     log.With("component", "chart"),
	}, nil
}

// Render draws one bar per category with its count above it and totalCost
// as the caption. counts must be parallel to categories. An empty pair
// renders an empty-state image.
func (r *Renderer) Render(categories []string, counts []float64, totalCost string) (out []byte, err error) {
	if r.width <= 0 || r.height <= 0 {
		return nil, errors.RenderError(fmt.Sprintf("invalid chart dimensions %dx%d", r.width, r.height), nil)
	}
	if int64(r.width)*int64(r.height) > MaxPixels {
		return nil, errors.RenderError(fmt.Sprintf("chart dimensions %dx%d exceed %d pixels", r.width, r.height, MaxPixels), nil)
	}

	defer func() {
		if p := recover(); p != nil {
			out, err = nil, errors.RenderError(fmt.Sprintf("chart drawing panicked: %v", p), nil)
		}
	}()
	if len(categories) != len(counts) {
		return nil, errors.RenderError(fmt.Sprintf("got %d categories but %d counts", len(categories), len(counts)), nil)
	}

	maxCount := 0.0
	for i, c := range counts {
		if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, errors.RenderError(fmt.Sprintf("invalid count %v for %q", c, categories[i]), nil)
		}
		maxCount = math.Max(maxCount, c)
	}

	plotBottom := float64(r.height - marginBelow)
	plotHeight := plotBottom - marginTop
	plotWidth := float64(r.width - 2*marginX)
	if plotHeight <= 0 || plotWidth <= 0 {
		return nil, errors.RenderError(fmt.Sprintf("chart dimensions %dx%d leave no room to plot", r.width, r.height), nil)
	}

	// gg contexts start fully transparent
	dc := gg.NewContext(r.width, r.height)

	captionFace := r.face(r.bold, captionSize)
	defer captionFace.Close()
	labelFace := r.face(r.regular, labelSize)
	defer labelFace.Close()

	dc.SetFontFace(captionFace)
	dc.SetHexColor(textColor)
	dc.DrawStringAnchored("Monthly Team Cost: "+totalCost, marginX, marginTop/2, 0, 0.5)

	dc.SetFontFace(labelFace)

	if len(categories) == 0 || maxCount == 0 {
		dc.DrawStringAnchored("No team members yet", float64(r.width)/2, marginTop+plotHeight/2, 0.5, 0.5)
		return encode(dc)
	}

	dc.SetHexColor(axisColor)
	dc.SetLineWidth(1)
	dc.DrawLine(marginX, plotBottom, float64(r.width-marginX), plotBottom)
	dc.Stroke()

	// leave headroom for the value labels
	scale := (plotHeight - 2*labelSize) / maxCount
	slot := plotWidth / float64(len(categories))
	barWidth := slot * 0.6

	for i, category := range categories {
		barHeight := counts[i] * scale
		x := marginX + slot*float64(i) + (slot-barWidth)/2
		y := plotBottom - barHeight
		center := x + barWidth/2

		dc.SetHexColor(barColors[i%len(barColors)])
		dc.DrawRectangle(x, y, barWidth, barHeight)
		dc.Fill()

		dc.SetHexColor(textColor)
		dc.DrawStringAnchored(strconv.FormatFloat(counts[i], 'f', -1, 64), center, y-labelSize/2, 0.5, 0.5)
		dc.DrawStringAnchored(fit(dc, category, slot-4), center, plotBottom+marginBelow/2, 0.5, 0.5)
	}

	return encode(dc)
}

// RenderHTML renders the chart as an inline <img>. Failures are logged and
// replaced by Placeholder so the page still renders.
func (r *Renderer) RenderHTML(categories []string, counts []float64, totalCost string) template.HTML {
	png, err := r.Render(categories, counts, totalCost)
	if err != nil {
		r.log.Warn("chart rendering failed, using placeholder", "error", err)
		return Placeholder
	}
	return template.HTML(fmt.Sprintf(
		`<img src="data:image/png;base64,%s" width="%d" height="%d" alt="Team members by title">`,
		base64.StdEncoding.EncodeToString(png), r.width, r.height,
	))
}

// RenderSummary renders the title histogram of summary
func (r *Renderer) RenderSummary(summary team.Summary) template.HTML {
	return r.RenderHTML(summary.Categories(), summary.Counts(), summary.FormattedTotalCost())
}

// RenderSummaryPNG renders the title histogram of summary as raw PNG bytes
func (r *Renderer) RenderSummaryPNG(summary team.Summary) ([]byte, error) {
	return r.Render(summary.Categories(), summary.Counts(), summary.FormattedTotalCost())
}

func (r *Renderer) face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

// fit shortens s with an ellipsis until it is at most width pixels wide
func fit(dc *gg.Context, s string, width float64) string {
	if w, _ := dc.MeasureString(s); w <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "…"
		if w, _ := dc.MeasureString(candidate); w <= width {
			return candidate
		}
	}
	return ""
}

func encode(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.RenderError("failed to encode chart", err)
	}
	return buf.Bytes(), nil
}
