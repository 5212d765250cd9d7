// Package matcher 在完整文本中定位推理标记对
package matcher

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/riverfjs/reasonify-go/internal/types"
)

// Clock 返回当前墙钟时间，测试中可替换
type Clock func() time.Time

// Matcher 按标记对逐一扫描原始文本
type Matcher struct {
	pairs []types.MarkerPair
	now   Clock
}

// New 创建 Matcher。pairs 为空时使用默认标记对，now 为 nil 时使用 time.Now
func New(pairs []types.MarkerPair, now Clock) *Matcher {
	if len(pairs) == 0 {
		pairs = types.DefaultMarkerPairs()
	}
	if now == nil {
		now = time.Now
	}
	return &Matcher{pairs: pairs, now: now}
}

// Detect 返回所有匹配的片段，按标记对顺序、同一标记对内按出现顺序排列
//
// 每个标记对都独立地对原始文本扫描，互不影响。未闭合的起始标记不产生片段。
func (m *Matcher) Detect(text string) []types.Span {
	spans := make([]types.Span, 0)
	for _, pair := range m.pairs {
		if !pair.Valid() {
			continue
		}
		spans = append(spans, m.scanPair(text, pair)...)
	}
	return spans
}

// scanPair 非贪婪匹配：内容取起始标记与其后最近的结束标记之间的部分
func (m *Matcher) scanPair(text string, pair types.MarkerPair) []types.Span {
	var spans []types.Span
	cursor := 0
	for cursor < len(text) {
		start := strings.Index(text[cursor:], pair.Start)
		if start < 0 {
			break
		}
		start += cursor
		startedAt := m.now()

		contentStart := start + len(pair.Start)
		end := strings.Index(text[contentStart:], pair.End)
		if end < 0 {
			// 之后的起始标记同样找不到结束标记
			break
		}
		end += contentStart
		endedAt := m.now()

		spanEnd := end + len(pair.End)
		spans = append(spans, types.Span{
			Pair:        pair,
			Content:     text[contentStart:end],
			StartOffset: start,
			EndOffset:   spanEnd,
			StartedAt:   startedAt,
			EndedAt:     endedAt,
			Duration:    Seconds(startedAt, endedAt),
		})
		cursor = spanEnd
	}
	return spans
}

// Seconds 将时间差四舍五入为整数秒，最小为 0
func Seconds(startedAt, endedAt time.Time) int {
	d := math.Round(endedAt.Sub(startedAt).Seconds())
	if d < 0 {
		return 0
	}
	return int(d)
}

// ResolveOverlaps 去掉与已保留片段相交的片段
//
// 起始偏移更小的片段优先，起始相同时保留更长的那个。
// 返回值保持原有的发现顺序。
func ResolveOverlaps(spans []types.Span) []types.Span {
	if len(spans) < 2 {
		return spans
	}

	order := make([]int, len(spans))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := spans[order[a]], spans[order[b]]
		if sa.StartOffset != sb.StartOffset {
			return sa.StartOffset < sb.StartOffset
		}
		return sa.EndOffset > sb.EndOffset
	})

	keep := make([]bool, len(spans))
	lastEnd := -1
	for _, idx := range order {
		if spans[idx].StartOffset < lastEnd {
			continue
		}
		keep[idx] = true
		lastEnd = spans[idx].EndOffset
	}

	resolved := make([]types.Span, 0, len(spans))
	for i, s := range spans {
		if keep[i] {
			resolved = append(resolved, s)
		}
	}
	return resolved
}
