// Package app 提供桌面端的 ebiten 游戏包装器
//
// App 把五彩纸屑特效、通知横幅、页面淡入和统计追踪接到 ebiten 的游戏循环上：
// Update 即每帧回调，负责推进所有状态；Draw 只做合成。
package app

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/lolgame/pkg/config"
	"github.com/decker502/lolgame/pkg/confetti"
	"github.com/decker502/lolgame/pkg/render"
	"github.com/decker502/lolgame/pkg/stats"
	"github.com/decker502/lolgame/pkg/ui"
	"github.com/decker502/lolgame/pkg/utils"
)

// 窗口默认尺寸
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// DefaultGameType 键盘操作记录到的游戏类型
const DefaultGameType = "champion"

// 元素 ID
const (
	answerElementID = "answer-input"
	shakeClass      = "shake"
	shakeSeconds    = 0.5
	resizeDebounce  = 250 * time.Millisecond
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Width/Height 初始窗口尺寸，0 使用默认值
	Width  int
	Height int
	// Kit 工具包配置，nil 使用默认配置
	Kit *config.KitConfig
	// Store 统计存储，nil 使用内存存储（降级模式）
	Store stats.Store
	// GameType 键盘操作记录到的游戏类型，为空使用 DefaultGameType
	GameType string
	// Seed 粒子随机种子，0 表示按时间取种子
	Seed int64
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	surface      *render.EbitenSurface
	effect       *confetti.Effect
	page         *ui.Page
	notification *ui.Notification
	tracker      *stats.Tracker

	gameType     string
	attempts     int     // 当前这一局的错误尝试次数
	shakeElapsed float64 // 抖动动画已播放时间

	width, height int
	lastLayout    image.Point
	resize        *utils.Debouncer[image.Point]
	resizeMu      sync.Mutex
	pendingSize   *image.Point

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
	verbose                  bool
}

// NewApp 创建并初始化应用
//
// 参数：
//   - cfg: 启动配置
//
// 返回：
//   - *App: 应用实例
//   - error: 配置无效时返回错误
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	kit := cfg.Kit
	if kit == nil {
		kit = config.DefaultKitConfig()
	}
	if err := kit.Validate(); err != nil {
		return nil, fmt.Errorf("工具包配置无效: %w", err)
	}

	params, err := confetti.NewParams(kit.Confetti)
	if err != nil {
		return nil, fmt.Errorf("五彩纸屑参数无效: %w", err)
	}

	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}

	store := cfg.Store
	if store == nil {
		log.Printf("[App] No stats store configured, using memory store")
		store = stats.NewMemoryStore()
	}

	gameType := cfg.GameType
	if gameType == "" {
		gameType = DefaultGameType
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	surface := render.NewEbitenSurface(width, height)
	notification := ui.NewNotification(kit.Notification.AutoHideSeconds)
	page := ui.NewPage(notification, kit.FadeIn.DelaySeconds,
		ui.NewElement("header", ui.ClassFadeIn),
		ui.NewElement("stats-panel", ui.ClassFadeIn),
		ui.NewElement(answerElementID),
		ui.NewElement("notification-close"),
	)

	a := &App{
		surface:      surface,
		effect:       confetti.NewEffect(surface, params, rand.New(rand.NewSource(seed))),
		page:         page,
		notification: notification,
		tracker:      stats.NewTracker(store),
		gameType:     gameType,
		width:        width,
		height:       height,
		lastLayout:   image.Pt(width, height),
		verbose:      cfg.Verbose,
	}
	a.resize = utils.NewDebouncer(resizeDebounce, a.queueResize)

	page.Ready()
	log.Printf("[App] Initialized: %dx%d, game type %q", width, height, gameType)
	return a, nil
}

// Celebrate 记录一局胜利，启动五彩纸屑并显示通知
//
// 参数：
//   - gameType: 游戏类型
//   - attempts: 本局尝试次数
//
// 返回：
//   - error: 统计写入失败时返回错误（特效和通知仍会显示）
func (a *App) Celebrate(gameType string, attempts int) error {
	err := a.tracker.Record(gameType, true, attempts)

	a.effect.Start()
	a.notification.Show(fmt.Sprintf("Correct! Solved in %d attempts", attempts))

	if err != nil {
		return fmt.Errorf("failed to save win: %w", err)
	}
	return nil
}

// GiveUp 记录一局失败并显示通知
func (a *App) GiveUp(gameType string, attempts int) error {
	if err := a.tracker.Record(gameType, false, attempts); err != nil {
		return fmt.Errorf("failed to save loss: %w", err)
	}
	a.notification.Show("Better luck next time!")
	return nil
}

// WrongGuess 记录一次错误尝试并让输入框抖动
func (a *App) WrongGuess() {
	a.attempts++
	if answer, ok := a.page.Element(answerElementID); ok {
		answer.Animate(shakeClass)
		a.shakeElapsed = 0
	}
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.applyPendingResize()
	a.updateWindow()
	a.handleInput()

	deltaTime := 1.0 / 60.0
	a.page.Update(deltaTime)
	a.updateShake(deltaTime)

	if a.effect.Running() {
		a.effect.Tick()
	}
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 16, G: 24, B: 38, A: 255})

	if header, ok := a.page.Element("header"); ok && header.HasClass(ui.ClassVisible) {
		ebitenutil.DebugPrintAt(screen, "LoL Guess - Enter: correct  Backspace: wrong  G: give up  Esc: close", 16, 16)
	}
	if panel, ok := a.page.Element("stats-panel"); ok && panel.HasClass(ui.ClassVisible) {
		ebitenutil.DebugPrintAt(screen, a.statsLine(), 16, 40)
	}

	answer := fmt.Sprintf("Attempts this round: %d", a.attempts)
	offset := 0
	if el, ok := a.page.Element(answerElementID); ok && el.HasClass(shakeClass) {
		// 简单的左右抖动
		offset = int(8 * (1 - a.shakeElapsed/shakeSeconds))
		if int(a.shakeElapsed*30)%2 == 1 {
			offset = -offset
		}
	}
	ebitenutil.DebugPrintAt(screen, answer, 16+offset, 64)

	a.surface.Draw(screen)

	if a.notification.Visible() {
		ebitenutil.DebugPrintAt(screen, a.notification.Message()+"  [x]", 16, a.height-32)
	}
}

// Layout 返回逻辑屏幕尺寸，窗口尺寸变化经防抖后应用到画布
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := image.Pt(outsideWidth, outsideHeight)
	if size != a.lastLayout && outsideWidth > 0 && outsideHeight > 0 {
		a.lastLayout = size
		a.resize.Call(size)
	}
	return a.width, a.height
}

// Close 停止挂起的防抖回调
func (a *App) Close() {
	a.resize.Stop()
}

// Tracker 返回统计追踪器
func (a *App) Tracker() *stats.Tracker {
	return a.tracker
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

func (a *App) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if err := a.Celebrate(a.gameType, a.attempts+1); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
		a.attempts = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		a.WrongGuess()
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		if err := a.GiveUp(a.gameType, a.attempts); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
		a.attempts = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		a.page.CloseClicked()
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		_, y := ebiten.CursorPosition()
		if a.notification.Visible() && y >= a.height-40 {
			a.page.CloseClicked()
		}
	}
}

func (a *App) updateShake(dt float64) {
	el, ok := a.page.Element(answerElementID)
	if !ok || !el.Animating() {
		return
	}
	a.shakeElapsed += dt
	if a.shakeElapsed >= shakeSeconds {
		el.AnimationEnd()
	}
}

// updateWindow 处理 F11 全屏切换
func (a *App) updateWindow() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}
}

// queueResize 在防抖 goroutine 中调用，只记录尺寸，由 Update 应用
func (a *App) queueResize(size image.Point) {
	a.resizeMu.Lock()
	defer a.resizeMu.Unlock()
	a.pendingSize = &size
}

// applyPendingResize 特效播放期间保持画布尺寸不变
func (a *App) applyPendingResize() {
	if a.effect.Running() {
		return
	}

	a.resizeMu.Lock()
	size := a.pendingSize
	a.pendingSize = nil
	a.resizeMu.Unlock()

	if size == nil {
		return
	}
	a.width, a.height = size.X, size.Y
	a.surface.Resize(size.X, size.Y)
	log.Printf("[App] Canvas resized to %dx%d", size.X, size.Y)
}

func (a *App) statsLine() string {
	s, ok := a.tracker.Fetch(a.gameType)
	if !ok {
		return fmt.Sprintf("%s: no games played yet", a.gameType)
	}
	line := fmt.Sprintf("%s: played %d  won %d  win rate %.0f%%  avg attempts %.1f",
		a.gameType, s.Played, s.Won, s.WinRate()*100, s.AverageAttempts())
	if s.LastPlayed != nil {
		line += "  last " + utils.FormatTime(s.LastPlayed.Local())
	}
	return line
}
