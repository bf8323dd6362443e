//go:build !android

package stats

// ensureStorageDir 非 Android 平台由 gdata 自动创建存储目录
func ensureStorageDir() error {
	return nil
}
