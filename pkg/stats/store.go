package stats

import (
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// Store 统计数据的持久化存储
//
// 只有加载和保存两个操作，数据是整个映射的序列化字节。
// 数据不存在时 Load 返回 (nil, nil)。
type Store interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// 存储路径常量
const (
	statsObject   = "stats"
	statsProperty = "lolGameStats"
)

// GdataStore 基于 gdata 的跨平台存储
//
// gdataManager 为 nil 时进入降级模式：数据只保存在内存中。
type GdataStore struct {
	gdataManager *gdata.Manager
	fallback     *MemoryStore
}

// NewGdataStore 创建 gdata 存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
//
// 返回：
//   - *GdataStore: 存储实例
func NewGdataStore(gdataManager *gdata.Manager) *GdataStore {
	if gdataManager == nil {
		log.Printf("[StatsStore] Warning: gdata manager unavailable, stats will not persist")
	}
	return &GdataStore{
		gdataManager: gdataManager,
		fallback:     NewMemoryStore(),
	}
}

// OpenGdataStore 按应用名打开 gdata 存储
//
// 打开失败不是致命错误，返回降级模式的存储和错误，调用方可以记录后继续运行。
//
// 参数：
//   - appName: gdata 应用名，决定存储目录
//
// 返回：
//   - *GdataStore: 存储实例（不会为 nil）
//   - error: gdata 初始化失败时返回错误
func OpenGdataStore(appName string) (*GdataStore, error) {
	if err := ensureStorageDir(); err != nil {
		return NewGdataStore(nil), err
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return NewGdataStore(nil), fmt.Errorf("failed to open gdata storage %q: %w", appName, err)
	}
	return NewGdataStore(manager), nil
}

// Persistent 报告数据是否会写入磁盘
func (s *GdataStore) Persistent() bool {
	return s.gdataManager != nil
}

// Load 从 gdata 读取统计数据
func (s *GdataStore) Load() ([]byte, error) {
	if s.gdataManager == nil {
		return s.fallback.Load()
	}

	if !s.gdataManager.ObjectPropExists(statsObject, statsProperty) {
		return nil, nil
	}

	data, err := s.gdataManager.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}
	return data, nil
}

// Save 将统计数据写入 gdata
func (s *GdataStore) Save(data []byte) error {
	if s.gdataManager == nil {
		return s.fallback.Save(data)
	}

	if err := s.gdataManager.SaveObjectProp(statsObject, statsProperty, data); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

// MemoryStore 内存存储，用于测试和降级模式
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore 创建空的内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith 创建带初始数据的内存存储
func NewMemoryStoreWith(data []byte) *MemoryStore {
	return &MemoryStore{data: append([]byte(nil), data...)}
}

func (s *MemoryStore) Load() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, nil
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemoryStore) Save(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	return nil
}
