package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"exhud/internal/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func config(t *testing.T, hudFile string, extra ...string) *app.Config {
	t.Helper()
	c := app.NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	args := append([]string{"-hud", hudFile, "-nodefault"}, extra...)
	require.NoError(t, fs.Parse(args))
	return c
}

func writeHUD(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hud.cfg")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

const layout = `doom ex
health_text 2 2 top_left
fps 2 2 top_right
doom full
health_text 2 2 bottom_left
`

func TestReportJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	code := check(config(t, writeHUD(t, layout)), &out, &errOut, true, false)
	require.Equal(t, 0, code, errOut.String())

	js := out.Bytes()
	assert.Equal(t, "doom", gjson.GetBytes(js, "mode").String())
	assert.Equal(t, "ex", gjson.GetBytes(js, "state").String())
	assert.Equal(t, int64(3), gjson.GetBytes(js, "sections.#").Int())
	assert.Equal(t, "ex", gjson.GetBytes(js, "sections.0.name").String())
	assert.True(t, gjson.GetBytes(js, "sections.0.status_bar").Bool())
	assert.Equal(t, int64(2), gjson.GetBytes(js, "sections.0.widgets.#").Int())
	assert.True(t, gjson.GetBytes(js, "sections.0.widgets.0.on").Bool())
	assert.False(t, gjson.GetBytes(js, `sections.0.widgets.#(name=="fps").on`).Bool())
	assert.False(t, gjson.GetBytes(js, "sections.1.loaded").Bool())
	assert.True(t, gjson.GetBytes(js, "sections.2.loaded").Bool())

	unplaced := gjson.GetBytes(js, "unplaced").Array()
	assert.NotEmpty(t, unplaced)
	for _, name := range unplaced {
		assert.NotEqual(t, "health_text", name.String())
		assert.NotEqual(t, "fps", name.String())
	}
}

func TestReportText(t *testing.T) {
	var out, errOut bytes.Buffer
	code := check(config(t, writeHUD(t, layout)), &out, &errOut, false, false)
	require.Equal(t, 0, code, errOut.String())

	text := out.String()
	assert.Contains(t, text, "mode doom, active container ex\n")
	assert.Contains(t, text, "ex (loaded, 2 widgets)\n")
	assert.Contains(t, text, "off (not loaded, 0 widgets)\n")
	assert.Contains(t, text, "never placed:\n")
	assert.NotContains(t, text, "\x1b[", "no colour outside a terminal")
}

func TestConfigErrorExitCode(t *testing.T) {
	var out, errOut bytes.Buffer
	code := check(config(t, writeHUD(t, "doom ex\n\nbogus_widget 1 1 top\n")), &out, &errOut, false, false)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "invalid hud component")
	assert.Contains(t, errOut.String(), "3 | bogus_widget 1 1 top")
	assert.Empty(t, out.String())
}

func TestFrameDump(t *testing.T) {
	var out, errOut bytes.Buffer
	code := check(config(t, writeHUD(t, layout)), &out, &errOut, false, true)
	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), `text`)
	assert.Contains(t, out.String(), `"HEL 100%"`)
}
