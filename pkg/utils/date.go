package utils

import (
	"fmt"
	"time"
)

// ShortDateLayout 短日期格式（月/日/年，不补零）
const ShortDateLayout = "1/2/2006"

var dateInputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
}

// FormatDate 将日期字符串格式化为短日期
//
// 支持 RFC3339（如 "2024-05-01T10:00:00.000Z"）和纯日期（"2024-05-01"）输入。
// 输出按本地时区显示，与浏览器的 toLocaleDateString 一致。
//
// 返回：
//   - string: 形如 "5/1/2024" 的短日期
//   - error: 无法识别的输入
func FormatDate(s string) (string, error) {
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FormatTime(t.Local()), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", s)
}

// FormatTime 将时间格式化为短日期
func FormatTime(t time.Time) string {
	return t.Format(ShortDateLayout)
}
