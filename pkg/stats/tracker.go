// Package stats 记录各游戏类型的游玩统计（局数、胜场、尝试次数、最后游玩时间），
// 并通过 Store 持久化为单个 JSON 映射。
package stats

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"
)

// Tracker 游戏统计追踪器
//
// 每次操作都完整读取并写回映射，不在内存中缓存，
// 因此多个 Tracker 共享同一个 Store 时看到的数据一致。
type Tracker struct {
	store Store
	now   func() time.Time
}

// NewTracker 创建统计追踪器
//
// 参数：
//   - store: 持久化存储
//
// 返回：
//   - *Tracker: 追踪器实例
func NewTracker(store Store) *Tracker {
	return &Tracker{
		store: store,
		now:   time.Now,
	}
}

// SetClock 替换时间源（测试用）
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

// Record 记录一局游戏
//
// 对应条目不存在时以零值创建；局数加 1，获胜时胜场加 1，
// 累加尝试次数（负数按原值累加，不做校验），并更新最后游玩时间。
//
// 参数：
//   - gameType: 游戏类型标识
//   - won: 本局是否获胜
//   - attempts: 本局尝试次数
//
// 返回：
//   - error: 读取或写回存储失败时返回错误
func (t *Tracker) Record(gameType string, won bool, attempts int) error {
	all, err := t.load()
	if err != nil {
		return err
	}

	entry := all[gameType]
	entry.Played++
	if won {
		entry.Won++
	}
	entry.TotalAttempts += attempts
	playedAt := t.now().UTC()
	entry.LastPlayed = &playedAt
	all[gameType] = entry

	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := t.store.Save(data); err != nil {
		return fmt.Errorf("failed to record %q: %w", gameType, err)
	}

	log.Printf("[StatsTracker] Recorded %s: played=%d won=%d attempts=%d", gameType, entry.Played, entry.Won, entry.TotalAttempts)
	return nil
}

// Fetch 获取指定游戏类型的统计
//
// 返回：
//   - GameStats: 统计数据
//   - bool: 是否存在数据；从未记录或读取失败时为 false
func (t *Tracker) Fetch(gameType string) (GameStats, bool) {
	all, err := t.load()
	if err != nil {
		log.Printf("[StatsTracker] Warning: %v", err)
		return GameStats{}, false
	}
	entry, ok := all[gameType]
	return entry, ok
}

// All 返回所有游戏类型的统计
func (t *Tracker) All() (map[string]GameStats, error) {
	return t.load()
}

// GameTypes 返回已记录的游戏类型（按名称排序）
func (t *Tracker) GameTypes() ([]string, error) {
	all, err := t.load()
	if err != nil {
		return nil, err
	}
	types := make([]string, 0, len(all))
	for gameType := range all {
		types = append(types, gameType)
	}
	sort.Strings(types)
	return types, nil
}

// load 读取完整映射
//
// 数据不存在或格式错误时返回空映射；只有存储本身读取失败才返回错误。
func (t *Tracker) load() (map[string]GameStats, error) {
	data, err := t.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	all := make(map[string]GameStats)
	if len(data) == 0 {
		return all, nil
	}

	var decoded map[string]*GameStats
	if err := json.Unmarshal(data, &decoded); err != nil {
		log.Printf("[StatsTracker] Warning: malformed stats data: %v (starting fresh)", err)
		return all, nil
	}
	// null 条目视为没有数据
	for gameType, entry := range decoded {
		if entry != nil {
			all[gameType] = *entry
		}
	}
	return all, nil
}
