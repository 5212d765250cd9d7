package parser

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// StandardOptions goldmark 扩展配置
//
// 推理块本身是原始 HTML（<details>），必须开启 WithUnsafe 才会原样输出。
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // GitHub Flavored Markdown (tables, strikethrough, tasklists)
		extension.DefinitionList, // 定义列表
		extension.Footnote,       // 脚注
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // 自动生成标题 ID
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
}

// ToHTML 将渲染好的 Markdown 文档转换为 HTML
func ToHTML(markdown string) (string, error) {
	md := goldmark.New(StandardOptions...)

	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
