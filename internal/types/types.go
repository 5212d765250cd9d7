package types

import (
	"strings"
	"time"
)

// MarkerPair 表示一对推理标记（起始字面量、结束字面量）
type MarkerPair struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Valid 两个字面量都必须非空
func (p MarkerPair) Valid() bool {
	return p.Start != "" && p.End != ""
}

// DefaultMarkerPairs 返回默认识别的标记对，顺序固定
func DefaultMarkerPairs() []MarkerPair {
	return []MarkerPair{
		{Start: "<think>", End: "</think>"},
		{Start: "<thinking>", End: "</thinking>"},
		{Start: "<reason>", End: "</reason>"},
		{Start: "<reasoning>", End: "</reasoning>"},
		{Start: "<thought>", End: "</thought>"},
		{Start: "<Thought>", End: "</Thought>"},
		{Start: "<|begin_of_thought|>", End: "<|end_of_thought|>"},
		{Start: "◁think▷", End: "◁/think▷"},
	}
}

// Span 记录一次匹配到的推理片段
//
// StartOffset/EndOffset 是完整匹配区域（起始标记到结束标记）在源文本中的
// 字节偏移，半开区间 [StartOffset, EndOffset)。
type Span struct {
	Pair        MarkerPair
	Content     string // 标记之间的原始内容，未 trim
	StartOffset int
	EndOffset   int
	StartedAt   time.Time
	EndedAt     time.Time
	Duration    int // 秒
}

// Empty reports whether the content is blank after trimming.
func (s Span) Empty() bool {
	return strings.TrimSpace(s.Content) == ""
}

// Overlaps reports whether two spans share at least one byte.
// Adjacent spans (one ends where the other starts) do not overlap.
func (s Span) Overlaps(o Span) bool {
	return s.StartOffset < o.EndOffset && o.StartOffset < s.EndOffset
}

// RenderConfig 渲染配置
type RenderConfig struct {
	DetailsType string // <details type="..."> 中的类型名
	QuoteMarker string // 推理内容每行的引用前缀
	SkipEmpty   bool   // 空内容的片段只从正文删除，不渲染成块
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		DetailsType: "reasoning",
		QuoteMarker: ">",
		SkipEmpty:   true,
	}
}

// BlockTypeReasoning 结构化记录中的类型名
const BlockTypeReasoning = "reasoning"

// Block 是推理片段的结构化形式，供需要机器可读结果的调用方使用
type Block struct {
	Type        string    `json:"type"`
	StartTag    string    `json:"start_tag"`
	EndTag      string    `json:"end_tag"`
	Content     string    `json:"content"`
	StartedAt   time.Time `json:"started_at"`
	EndedAt     time.Time `json:"ended_at"`
	Duration    int       `json:"duration"`
	StartOffset int       `json:"start_offset"`
	EndOffset   int       `json:"end_offset"`
}

// NewBlock 从片段构造结构化记录，内容去掉首尾空白
func NewBlock(s Span) Block {
	return Block{
		Type:        BlockTypeReasoning,
		StartTag:    s.Pair.Start,
		EndTag:      s.Pair.End,
		Content:     strings.TrimSpace(s.Content),
		StartedAt:   s.StartedAt,
		EndedAt:     s.EndedAt,
		Duration:    s.Duration,
		StartOffset: s.StartOffset,
		EndOffset:   s.EndOffset,
	}
}
