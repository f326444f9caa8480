package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateSummaryAndChart(t *testing.T) {
	dir := t.TempDir()
	workbook := filepath.Join(dir, "roster.xlsx")
	image := filepath.Join(dir, "chart.png")

	out, err := run(t, "generate", workbook, "--members", "5", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 5 members")

	out, err = run(t, "summary", workbook)
	require.NoError(t, err)
	assert.Contains(t, out, "Team Members")
	assert.Contains(t, out, "Monthly Team Cost")
	assert.Contains(t, out, "Median Compensation")

	_, err = run(t, "chart", workbook, image, "--width", "400", "--height", "300")
	require.NoError(t, err)

	raw, err := os.ReadFile(image)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
}

func TestSummary_MissingFile(t *testing.T) {
	_, err := run(t, "summary", filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestArgsValidated(t *testing.T) {
	_, err := run(t, "chart", "only-one-arg.xlsx")
	assert.Error(t, err)
}
