// Package details 删除已渲染的 <details type="..."> 块
package details

import (
	"regexp"
	"strings"
)

// compile 为本次调用的全部类型名构造一个交替正则
//
// 类型名不区分大小写，type 属性之后到 '>' 之间允许出现其他属性，
// 内容非贪婪、可跨行。没有有效类型名时返回 nil。
func compile(typeNames []string) *regexp.Regexp {
	quoted := make([]string, 0, len(typeNames))
	for _, name := range typeNames {
		if name == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(name))
	}
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?is)<details\s+type="(?:` + strings.Join(quoted, "|") + `)"[^>]*>.*?</details>`)
}

// Remove 删除指定类型的所有块，其余文本逐字节保留
func Remove(text string, typeNames ...string) string {
	re := compile(typeNames)
	if re == nil {
		return text
	}
	return re.ReplaceAllLiteralString(text, "")
}
