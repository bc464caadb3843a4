//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。构建前需要把 data/weapons.yaml
// 复制到 mobile/data/ 下：
//
//	mkdir -p mobile/data && cp data/weapons.yaml mobile/data/
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg dev.poehali.drill -o build/android/drill.aar -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/app"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/config"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	// 移动端没有环境变量，使用默认配置（gdata 存储）
	gameApp, err := app.NewApp(app.Config{Verbose: true}, config.DefaultAppConfig())
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
