package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML_KeepsDetails(t *testing.T) {
	doc := "<details type=\"reasoning\" done=\"true\" duration=\"2\">\n" +
		"<summary>Thought for 2 seconds</summary>\n" +
		"> step\n" +
		"</details>\n\n" +
		"The **answer**."

	out, err := ToHTML(doc)
	require.NoError(t, err)
	assert.Contains(t, out, `<details type="reasoning" done="true" duration="2">`)
	assert.Contains(t, out, "<summary>Thought for 2 seconds</summary>")
	assert.Contains(t, out, "<p>The <strong>answer</strong>.</p>")
}

func TestToHTML_PlainMarkdown(t *testing.T) {
	out, err := ToHTML("# Title\n\n- one\n- two\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1 id=\"title\">Title</h1>")
	assert.Contains(t, out, "<li>one</li>")
}

func TestToHTML_Empty(t *testing.T) {
	out, err := ToHTML("")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}
