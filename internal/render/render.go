// Package render 将推理片段渲染为可折叠块，并清理剩余正文
package render

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/riverfjs/reasonify-go/internal/buffer"
	"github.com/riverfjs/reasonify-go/internal/types"
)

// ErrInvalidSpanSet 片段相交、颠倒或越界
var ErrInvalidSpanSet = errors.New("invalid span set")

// blankLinesRe 匹配两个换行之间只有空白的区域，包括 U+3000、U+00A0 等 Unicode 空白
var blankLinesRe = regexp.MustCompile(`\n[\s\p{Z}]*\n`)

// Result 渲染结果
type Result struct {
	Text          string
	Residual      string
	Blocks        []types.Block
	TotalDuration int
}

// Render 删除所有片段区域，按发现顺序渲染推理块，正文放在最后
func Render(text string, spans []types.Span, config *types.RenderConfig) (*Result, error) {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	if err := Validate(text, spans); err != nil {
		return nil, err
	}

	ranges := make([]buffer.Range, len(spans))
	for i, s := range spans {
		ranges[i] = buffer.Range{Start: s.StartOffset, End: s.EndOffset}
	}
	residual := NormalizeWhitespace(buffer.Exclude(text, ranges))

	result := &Result{
		Residual: residual,
		Blocks:   make([]types.Block, 0, len(spans)),
	}
	parts := make([]string, 0, len(spans)+1)
	for _, s := range spans {
		if config.SkipEmpty && s.Empty() {
			continue
		}
		block := types.NewBlock(s)
		parts = append(parts, FormatBlock(block, config))
		result.Blocks = append(result.Blocks, block)
		result.TotalDuration += block.Duration
	}
	if residual != "" {
		parts = append(parts, residual)
	}
	result.Text = strings.Join(parts, "\n\n")
	return result, nil
}

// Validate 检查片段是否都在文本范围内且两两不相交
func Validate(text string, spans []types.Span) error {
	for i, s := range spans {
		if s.StartOffset < 0 || s.StartOffset >= s.EndOffset || s.EndOffset > len(text) {
			return errors.Wrapf(ErrInvalidSpanSet, "span %d has range [%d, %d) outside text of length %d",
				i, s.StartOffset, s.EndOffset, len(text))
		}
	}

	sorted := make([]types.Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartOffset < sorted[j].StartOffset
	})
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.Overlaps(prev) {
			return errors.Wrapf(ErrInvalidSpanSet, "span [%d, %d) %s overlaps [%d, %d) %s",
				cur.StartOffset, cur.EndOffset, cur.Pair.Start,
				prev.StartOffset, prev.EndOffset, prev.Pair.Start)
		}
	}
	return nil
}

// FormatBlock 渲染单个推理块
//
//	<details type="reasoning" done="true" duration="2">
//	<summary>Thought for 2 seconds</summary>
//	> ...
//	</details>
func FormatBlock(block types.Block, config *types.RenderConfig) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<details type=\"%s\" done=\"true\" duration=\"%d\">\n", config.DetailsType, block.Duration)
	fmt.Fprintf(&sb, "<summary>%s</summary>\n", Summary(block.Duration))
	if quoted := QuoteLines(block.Content, config.QuoteMarker); quoted != "" {
		sb.WriteString(quoted)
		sb.WriteByte('\n')
	}
	sb.WriteString("</details>")
	return sb.String()
}

// Summary 返回 "Thought for N second(s)"，仅 N == 1 使用单数
func Summary(duration int) string {
	unit := "seconds"
	if duration == 1 {
		unit = "second"
	}
	return fmt.Sprintf("Thought for %d %s", duration, unit)
}

// QuoteLines 给每个非空行加引用前缀，已有前缀的行保持不变
func QuoteLines(content, marker string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		switch {
		case strings.TrimSpace(line) == "":
			lines[i] = ""
		case strings.HasPrefix(line, marker):
		default:
			lines[i] = marker + " " + line
		}
	}
	return strings.Join(lines, "\n")
}

// NormalizeWhitespace 连续空行压缩为一个空行，并去掉首尾空白
func NormalizeWhitespace(text string) string {
	return strings.TrimSpace(blankLinesRe.ReplaceAllString(text, "\n\n"))
}
