//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。构建前先把资源复制到本目录：
//
//	cp -r assets data mobile/
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.wishbloom -o build/android/wishbloom.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Wishbloom.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/wishbloom/pkg/app"
	"github.com/decker502/wishbloom/pkg/embedded"
	"github.com/decker502/wishbloom/pkg/types"
)

// demoWish 移动端演示包内置的心愿
var demoWish = types.Wish{
	ID:      "demo",
	Name:    "You",
	Message: "Wishing you a day as bright as you are!",
	Theme:   "birthday",
	Views:   1,
}

func init() {
	// 初始化嵌入资源
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	cfg := app.Config{
		Verbose: true, // Enable verbose logging for debugging
		Wish:    demoWish,
	}

	revealApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(revealApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
