//go:build android

package utils

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// settingsObjectDir gdata 保存观看端设置使用的对象目录
const settingsObjectDir = "settings"

// EnsureStorageDir 在 gdata.Open 之前创建 Android 上的设置目录
// gdata 以 /data/data/{package}/ 为根，但不会创建对象子目录
func EnsureStorageDir() error {
	pkg, err := androidPackageName()
	if err != nil {
		return fmt.Errorf("detect android package: %w", err)
	}

	dir := filepath.Join("/data/data", pkg, settingsObjectDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir %s: %w", dir, err)
	}
	return nil
}

// androidPackageName 进程名即包名，取 /proc/self/cmdline 的第一个参数
func androidPackageName() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	name := string(bytes.TrimSpace(data))
	if name == "" {
		return "", errors.New("empty /proc/self/cmdline")
	}
	return name, nil
}
