package utils

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// GetCookie 从 Cookie 头中查找指定名称的值
//
// header 为分号分隔的 key=value 列表（如 "a=1; b=2"）。
// 返回第一个名称完全匹配的值，并做百分号解码；
// 解码失败或结果不是合法 UTF-8 时返回原始值。
//
// 参数：
//   - header: Cookie 字符串，为空表示没有 Cookie
//   - name: 要查找的名称
//
// 返回：
//   - string: 解码后的值
//   - bool: 是否找到
func GetCookie(header, name string) (string, bool) {
	if header == "" || name == "" {
		return "", false
	}

	for _, part := range strings.Split(header, ";") {
		value, found := strings.CutPrefix(strings.TrimSpace(part), name+"=")
		if !found {
			continue
		}
		if decoded, err := url.PathUnescape(value); err == nil && utf8.ValidString(decoded) {
			return decoded, true
		}
		return value, true
	}

	return "", false
}
