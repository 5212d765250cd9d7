package details

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

const mixed = `
Some content before.
<details type="reasoning" done="true">
<summary>Reasoning</summary>
This should be removed.
</details>
Some content after.
<details type="code_interpreter" done="false">
<summary>Code</summary>
This should also be removed.
</details>
Final content.
`

func TestRemove_BothTypes(t *testing.T) {
	got := Remove(mixed, "reasoning", "code_interpreter")

	assert.NotContains(t, got, `<details type="reasoning"`)
	assert.NotContains(t, got, `<details type="code_interpreter"`)
	assert.Equal(t, "\nSome content before.\n\nSome content after.\n\nFinal content.\n", got)
}

func TestRemove_OnlyRequestedType(t *testing.T) {
	got := Remove(mixed, "reasoning")
	assert.NotContains(t, got, "This should be removed.")
	assert.Contains(t, got, `<details type="code_interpreter" done="false">`)
	assert.Contains(t, got, "This should also be removed.")
}

func TestRemove_CaseInsensitiveTypeName(t *testing.T) {
	text := `a<DETAILS type="Reasoning" duration="3">x</details>b`
	assert.Equal(t, "ab", Remove(text, "reasoning"))
}

func TestRemove_NonGreedy(t *testing.T) {
	text := `<details type="reasoning">one</details>keep<details type="reasoning">two</details>`
	assert.Equal(t, "keep", Remove(text, "reasoning"))
}

func TestRemove_NoMatchIsByteIdentical(t *testing.T) {
	text := "no blocks here\n<details>untyped</details>\n<details type=\"tool_calls\">t</details>"
	assert.Equal(t, text, Remove(text, "reasoning"))
}

func TestRemove_TypeNameIsLiteral(t *testing.T) {
	text := `<details type="a.b">x</details><details type="axb">y</details>`
	got := Remove(text, "a.b")
	assert.Equal(t, `<details type="axb">y</details>`, got)
}

func TestRemove_EmptyNamesIgnored(t *testing.T) {
	assert.Equal(t, mixed, Remove(mixed))
	assert.Equal(t, mixed, Remove(mixed, ""))
}

func TestRemove_RenderedBlockRoundTrip(t *testing.T) {
	rendered := "<details type=\"reasoning\" done=\"true\" duration=\"1\">\n" +
		"<summary>Thought for 1 second</summary>\n" +
		"> step\n" +
		"</details>\n\nThe answer."
	got := strings.TrimSpace(Remove(rendered, "reasoning"))
	assert.Equal(t, "The answer.", got)
}

func TestRemove_ManyDistinctNames(t *testing.T) {
	names := make([]string, 0, 5000)
	for i := 0; i < 5000; i++ {
		names = append(names, fmt.Sprintf("t%d", i))
	}
	text := `a<details type="t4999">x</details>b<details type="t10">y</details>c<details type="u1">z</details>`
	assert.Equal(t, `abc<details type="u1">z</details>`, Remove(text, names...))
}

func TestRemove_CallsAreIndependent(t *testing.T) {
	text := `<details type="a">1</details>|<details type="b">2</details>`

	var wg sync.WaitGroup
	results := make([]string, 200)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := "a"
			if i%2 == 1 {
				name = "b"
			}
			results[i] = Remove(text, name)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if i%2 == 0 {
			assert.Equal(t, `|<details type="b">2</details>`, got)
		} else {
			assert.Equal(t, `<details type="a">1</details>|`, got)
		}
	}

	// 之前的调用不影响后续结果
	assert.Equal(t, text, Remove(text, "c"))
}
