//go:build android

package stats

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// ensureStorageDir 确保 Android 存档目录存在并可写
//
// gdata 在 Android 上使用 /data/data/{package}/ 作为存储路径，
// 但不会预先创建子目录，必须在 gdata.Open 之前调用。
func ensureStorageDir() error {
	pkg, err := androidPackage()
	if err != nil {
		return fmt.Errorf("failed to detect Android package: %w", err)
	}

	savesDir := filepath.Join("/data/data", pkg, "saves")
	if err := os.MkdirAll(savesDir, 0755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", savesDir, err)
	}

	probe := filepath.Join(savesDir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", savesDir, err)
	}
	return os.Remove(probe)
}

// androidPackage 从 /proc/self/cmdline 读取应用包名
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	// cmdline 以 NUL 分隔参数，第一个参数即包名
	name, _, _ := bytes.Cut(data, []byte{0})
	name = bytes.TrimSpace(name)
	if len(name) == 0 {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return string(name), nil
}
