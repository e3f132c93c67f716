package game

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/wishbloom/pkg/embedded"
)

// FontWeight 字重
type FontWeight int

const (
	FontRegular FontWeight = iota
	FontBold
)

// ResourceManager 集中管理场景资源（音乐、字体）
//
// 资源只加载一次并缓存复用。
// 不是线程安全的：所有调用都发生在游戏主循环上。
//
// 用法：
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	player, err := rm.LoadMusic("assets/music/birthday.mp3")
type ResourceManager struct {
	audioContext *audio.Context
	musicCache   map[string]*audio.Player

	fontSources   map[FontWeight]*text.GoTextFaceSource
	fontFaceCache map[string]*text.GoTextFace
}

// NewResourceManager 创建资源管理器
// audioContext 可为 nil（无音频环境），此时所有音乐都视为不可用
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext:  audioContext,
		musicCache:    make(map[string]*audio.Player),
		fontSources:   make(map[FontWeight]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// AudioContext 返回音频上下文
func (rm *ResourceManager) AudioContext() *audio.Context {
	return rm.audioContext
}

// LoadMusic 加载背景音乐并包装为无限循环
// 支持 .mp3 和 .ogg；文件缺失或无法解码时返回包装了 ErrTrackUnavailable 的错误
func (rm *ResourceManager) LoadMusic(musicPath string) (*audio.Player, error) {
	if cached, ok := rm.musicCache[musicPath]; ok {
		return cached, nil
	}

	stream, err := decodeMusic(musicPath)
	if err != nil {
		return nil, err
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s: %w", musicPath, ErrTrackUnavailable)
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := rm.audioContext.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", musicPath, err)
	}

	rm.musicCache[musicPath] = player
	return player, nil
}

// lengthReadSeeker 解码后的音频流
type lengthReadSeeker interface {
	io.ReadSeeker
	Length() int64
}

// decodeMusic 读取并解码音乐文件（全部读入内存，避免持有文件句柄）
func decodeMusic(musicPath string) (lengthReadSeeker, error) {
	data, err := embedded.ReadFile(musicPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read music %s: %v: %w", musicPath, err, ErrTrackUnavailable)
	}
	reader := bytes.NewReader(data)

	switch ext := strings.ToLower(path.Ext(musicPath)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 %s: %v: %w", musicPath, err, ErrTrackUnavailable)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG %s: %v: %w", musicPath, err, ErrTrackUnavailable)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format %q (supported: .mp3, .ogg): %w", ext, ErrTrackUnavailable)
	}
}

// LoadFont 返回指定字重和字号的字体
// 使用内置的 Go 字体，不依赖外部字体文件
func (rm *ResourceManager) LoadFont(weight FontWeight, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%d:%.1f", weight, size)
	if cached, ok := rm.fontFaceCache[cacheKey]; ok {
		return cached, nil
	}

	source, ok := rm.fontSources[weight]
	if !ok {
		ttf := goregular.TTF
		if weight == FontBold {
			ttf = gobold.TTF
		}
		var err error
		source, err = text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSources[weight] = source
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// MustFont 同 LoadFont，失败时 panic（内置字体解析失败属于构建错误）
func (rm *ResourceManager) MustFont(weight FontWeight, size float64) *text.GoTextFace {
	face, err := rm.LoadFont(weight, size)
	if err != nil {
		panic(err)
	}
	return face
}
