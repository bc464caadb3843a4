package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/app"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/config"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/embedded"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	weapon  = flag.String("weapon", "", "直接开始训练的武器ID（如 pm, ak74），为空时显示菜单")
	mode    = flag.String("mode", "disassembly", "与 -weapon 一起使用的模式：disassembly / assembly")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	appCfg := config.LoadAppConfig()

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Weapon:  *weapon,
		Mode:    *mode,
	}, appCfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Weapon Drill 3D")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
