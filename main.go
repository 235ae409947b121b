package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/handmotion/pkg/app"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	composition := flag.String("composition", "default", "要编辑的合成 ID")
	defaultsPath := flag.String("defaults", "", "场景默认内容配置文件（YAML），为空则不加载")
	scene := flag.String("scene", "main", "启动时选中的场景")
	flag.Parse()

	editorApp, err := app.NewApp(app.Config{
		Verbose:       *verbose,
		CompositionID: *composition,
		DefaultsPath:  *defaultsPath,
		Scene:         *scene,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("HandMotion 指针动画编辑器")

	if err := ebiten.RunGame(editorApp); err != nil {
		log.Fatal(err)
	}
}
