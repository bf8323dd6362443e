//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.lolgame -o build/android/lolgame.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/LolGame.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/lolgame/pkg/app"
	"github.com/decker502/lolgame/pkg/stats"
)

func init() {
	// 统计存储打开失败时降级为内存存储
	store, err := stats.OpenGdataStore("lolgame")
	if err != nil {
		log.Printf("[Mobile] Warning: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
		Store:   store,
	})
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
