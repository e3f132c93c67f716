package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/wishbloom/pkg/app"
	"github.com/decker502/wishbloom/pkg/config"
	"github.com/decker502/wishbloom/pkg/embedded"
	"github.com/decker502/wishbloom/pkg/store"
	"github.com/decker502/wishbloom/pkg/types"
)

var (
	wishID    = flag.String("wish", "", "要揭晓的心愿 id（从 -db 读取，浏览计数 +1）")
	dbPath    = flag.String("db", "wishes.db", "心愿数据库路径")
	assetsDir = flag.String("assets", "assets", "音乐资源目录")
	name      = flag.String("name", "", "不使用数据库时：收件人")
	message   = flag.String("message", "", "不使用数据库时：心愿内容")
	theme     = flag.String("theme", string(config.ThemeBirthday), "不使用数据库时：主题")
	pin       = flag.String("pin", "", "不使用数据库时：PIN（为空表示不加锁）")
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	wish, err := loadWish()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wishbloom: %v\n", err)
		os.Exit(1)
	}

	embedded.Init(assetsFS(*assetsDir), dataFS)

	revealApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Wish:    wish,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "wishbloom: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(revealApp.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(revealApp)
	revealApp.Close()
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// loadWish -wish 指定时从数据库读取，否则由命令行参数组成
func loadWish() (types.Wish, error) {
	if *wishID == "" {
		if *name == "" {
			return types.Wish{}, errors.New("either -wish or -name is required")
		}
		return types.Wish{
			ID:      "local",
			Name:    *name,
			Message: *message,
			Theme:   *theme,
			Pin:     types.PinPtr(*pin),
			Views:   1,
		}, nil
	}

	db, err := store.Open(*dbPath)
	if err != nil {
		return types.Wish{}, err
	}
	defer db.Close()

	return db.Open(context.Background(), *wishID)
}

// assetsFS 音乐目录不存在时返回 nil，此时音乐视为不可用
func assetsFS(dir string) fs.FS {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil
	}
	return os.DirFS(dir)
}
