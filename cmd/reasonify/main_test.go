package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reasonify "github.com/riverfjs/reasonify-go"
)

const sample = "<thinking>\nFirst, define the term.\n</thinking>\n\nMachine learning lets computers learn from data."

func TestRunRender_Markdown(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runRender(&out, sample, "markdown", false))
	got := out.String()
	assert.True(t, strings.HasPrefix(got, `<details type="reasoning" done="true"`))
	assert.Contains(t, got, "> First, define the term.")
	assert.True(t, strings.HasSuffix(got, "Machine learning lets computers learn from data.\n"))
}

func TestRunRender_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runRender(&out, sample, "json", false))

	var doc reasonify.Document
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, "First, define the term.", doc.Blocks[0].Content)
	assert.Equal(t, "Machine learning lets computers learn from data.", doc.Residual)
}

func TestRunRender_HTML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runRender(&out, sample, "html", false))
	assert.Contains(t, out.String(), "<p>Machine learning lets computers learn from data.</p>")
}

func TestRunRender_UnknownFormat(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, runRender(&out, sample, "yaml", false))
}

func TestReadInput(t *testing.T) {
	got, err := readInput(strings.NewReader("from stdin"), nil)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	got, err = readInput(strings.NewReader("from stdin"), []string{"-"})
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0o600))
	got, err = readInput(strings.NewReader("ignored"), []string{path})
	require.NoError(t, err)
	assert.Equal(t, "from file", got)

	_, err = readInput(nil, []string{filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)
}

func TestStripCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader("a<details type=\"code_interpreter\">c</details>b"))
	rootCmd.SetArgs([]string{"strip", "--type", "code_interpreter"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "ab", out.String())
}

func TestTagsCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"tags"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(reasonify.DefaultMarkerPairs()))
	assert.Equal(t, "<think> ... </think>", lines[0])
}
