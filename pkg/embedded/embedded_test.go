package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Reset()
	defer Reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{}, fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	Reset()

	_, err := ReadFile("data/themes.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

// TestReadFileRouting 测试 assets/ 与 data/ 前缀分别路由到不同文件系统
func TestReadFileRouting(t *testing.T) {
	Reset()
	defer Reset()

	assets := fstest.MapFS{
		"music/birthday.mp3": &fstest.MapFile{Data: []byte("mp3")},
	}
	data := fstest.MapFS{
		"data/themes.yaml": &fstest.MapFile{Data: []byte("themes: {}")},
	}
	Init(assets, data)

	tests := []struct {
		path string
		want string
	}{
		{"assets/music/birthday.mp3", "mp3"},
		{"./assets/music/birthday.mp3", "mp3"},
		{"/assets/music/birthday.mp3", "mp3"},
		{"data/themes.yaml", "themes: {}"},
	}

	for _, tt := range tests {
		got, err := ReadFile(tt.path)
		if err != nil {
			t.Errorf("ReadFile(%q) error: %v", tt.path, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	if _, err := ReadFile("music/birthday.mp3"); err == nil {
		t.Error("Expected error for path without known prefix")
	}
}

// TestNilAssets 测试没有 assets 目录时的降级行为
func TestNilAssets(t *testing.T) {
	Reset()
	defer Reset()

	Init(nil, fstest.MapFS{})

	if Exists("assets/music/birthday.mp3") {
		t.Error("Expected assets path to be missing when assets FS is nil")
	}
}
