package stats

import "time"

// GameStats 单个游戏类型的累计统计
//
// 不变量：Won <= Played；在尝试次数非负时 TotalAttempts 单调不减。
// JSON 字段名与浏览器端 lolGameStats 数据保持一致。
type GameStats struct {
	Played        int        `json:"played"`        // 已玩局数
	Won           int        `json:"won"`           // 获胜局数
	TotalAttempts int        `json:"totalAttempts"` // 累计尝试次数
	LastPlayed    *time.Time `json:"lastPlayed"`    // 最后一次游玩时间，未玩过为 null
}

// WinRate 返回胜率 (0.0 ~ 1.0)，未玩过返回 0
func (s GameStats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// AverageAttempts 返回每局平均尝试次数，未玩过返回 0
func (s GameStats) AverageAttempts() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.TotalAttempts) / float64(s.Played)
}
