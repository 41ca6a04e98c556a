package main

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scene = `
[clear_color]
default = "#000000"

[clear_color.overrides]
"window:1" = "#ff0000"

[[scene.windows]]
id = 1
width = 2
height = 2

[[scene.windows]]
id = 2
width = 2
height = 2

[[scene.images]]
handle = 3
width = 1
height = 1

[[scene.views]]
label = "main"
destination = "image:3"
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "clearpass.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(scene), 0o600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func readPixel(t *testing.T, path string) color.RGBA {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	return color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
}

func TestRunWritesTargets(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "--output", dir, "--frames", "2")
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{R: 255, A: 255}, readPixel(t, filepath.Join(dir, "window-1.png")))
	assert.Equal(t, color.RGBA{A: 255}, readPixel(t, filepath.Join(dir, "window-2.png")))
	assert.Equal(t, color.RGBA{A: 255}, readPixel(t, filepath.Join(dir, "image-3.png")))
}

func TestPlanCommand(t *testing.T) {
	out, err := execute(t, "plan")
	require.NoError(t, err)

	assert.Contains(t, out, "view   main       image:3      color=#000000ff")
	assert.Contains(t, out, "window:1")
	assert.Contains(t, out, "color=#ff0000ff")
}

func TestInvalidLogFlags(t *testing.T) {
	_, err := execute(t, "plan", "--loglevel", "loud")
	assert.ErrorContains(t, err, "invalid log level")

	_, err = execute(t, "plan", "--logformat", "xml")
	assert.ErrorContains(t, err, "invalid log format")
}
