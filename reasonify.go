// Package reasonify 从模型输出中提取推理标记块并重新渲染
//
// 模型生成的文本中可能包含 <think>...</think>、<thinking>...</thinking> 等
// 推理标记。这个包负责识别所有配置的标记对，把推理内容从可见正文中删除，
// 并将其渲染成独立的可折叠块，同时保留结构化记录（内容、时间戳、耗时）。
//
// 主要 API：
//   - Detect(): 定位所有推理片段
//   - Render(): 将片段渲染为文档，片段相交时返回 ErrInvalidSpanSet
//   - Process(): 完整处理（Detect → ResolveOverlaps → Render）
//   - StripDetails(): 删除已渲染的 <details type="..."> 块
//   - ToHTML(): 将渲染结果转换为 HTML
//
// 示例：
//
//	doc, err := reasonify.Process(raw)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(doc.Text)
//	fmt.Printf("%d block(s), %d seconds\n", len(doc.Blocks), doc.TotalDuration)
package reasonify

import (
	"github.com/riverfjs/reasonify-go/internal/details"
	"github.com/riverfjs/reasonify-go/internal/matcher"
	"github.com/riverfjs/reasonify-go/internal/parser"
	"github.com/riverfjs/reasonify-go/internal/render"
)

// ErrInvalidSpanSet is returned by Render when spans overlap or fall
// outside the text. Use errors.Is to test for it.
var ErrInvalidSpanSet = render.ErrInvalidSpanSet

// Detect 定位 text 中所有推理片段
//
// 每个标记对独立地对原始文本做非贪婪、跨行的字面量匹配。
// 没有匹配时返回空切片，从不返回错误。
func Detect(text string, opts ...Option) []Span {
	options := applyOptions(opts...)
	return matcher.New(options.Pairs, options.Clock).Detect(text)
}

// Render 将片段渲染为文档
//
// 每个片段的 [StartOffset, EndOffset) 区域都从正文中删除；片段之间必须互不相交。
func Render(text string, spans []Span, opts ...Option) (*Document, error) {
	options := applyOptions(opts...)
	result, err := render.Render(text, spans, options.renderConfig())
	if err != nil {
		return nil, err
	}
	return newDocument(result), nil
}

// ResolveOverlaps 去掉与更早开始的片段相交的片段，保持发现顺序
func ResolveOverlaps(spans []Span) []Span {
	return matcher.ResolveOverlaps(spans)
}

// Process 完整处理：定位、消解嵌套、渲染
func Process(text string, opts ...Option) (*Document, error) {
	options := applyOptions(opts...)

	spans := matcher.New(options.Pairs, options.Clock).Detect(text)
	resolved := matcher.ResolveOverlaps(spans)
	if dropped := len(spans) - len(resolved); dropped > 0 {
		Logger.Debug("dropped overlapping reasoning spans", "dropped", dropped, "kept", len(resolved))
	}

	result, err := render.Render(text, resolved, options.renderConfig())
	if err != nil {
		return nil, err
	}
	return newDocument(result), nil
}

// StripDetails 删除指定类型的 <details type="..."> 块
//
// 类型名不区分大小写，开始标签上允许有其他属性；其余内容逐字节保留。
func StripDetails(text string, typeNames ...string) string {
	return details.Remove(text, typeNames...)
}

// ToHTML 将渲染后的 Markdown 文档转换为 HTML，<details> 块原样保留
func ToHTML(document string) (string, error) {
	return parser.ToHTML(document)
}

func newDocument(result *render.Result) *Document {
	return &Document{
		Text:          result.Text,
		Residual:      result.Residual,
		Blocks:        result.Blocks,
		TotalDuration: result.TotalDuration,
	}
}
