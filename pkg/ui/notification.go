// Package ui 提供与渲染无关的界面状态：通知横幅、元素类名与动画切换、页面就绪淡入。
//
// 所有状态都由调用方每帧通过 Update(dt) 推进时间，事件（点击、动画结束、页面就绪）
// 以普通方法调用的形式传入，不依赖任何事件系统。
package ui

import "log"

// DefaultAutoHideSeconds 通知横幅默认自动隐藏延迟
const DefaultAutoHideSeconds = 5.0

// Notification 可关闭的通知横幅
type Notification struct {
	message  string
	visible  bool
	elapsed  float64 // 本次显示已经过的时间（秒）
	autoHide float64 // 自动隐藏延迟（秒），0 表示不自动隐藏
}

// NewNotification 创建通知横幅
//
// 参数：
//   - autoHideSeconds: 自动隐藏延迟（秒），0 表示不自动隐藏
func NewNotification(autoHideSeconds float64) *Notification {
	return &Notification{autoHide: autoHideSeconds}
}

// Show 显示消息并重新开始自动隐藏计时
func (n *Notification) Show(message string) {
	n.message = message
	n.visible = true
	n.elapsed = 0
	log.Printf("[Notification] Show: %s", message)
}

// Dismiss 立即隐藏横幅，重复调用无副作用
func (n *Notification) Dismiss() {
	if !n.visible {
		return
	}
	n.visible = false
	log.Printf("[Notification] Dismissed")
}

// Update 推进计时，到达自动隐藏延迟后隐藏横幅
//
// 参数：
//   - dt: 时间增量（秒）
func (n *Notification) Update(dt float64) {
	if !n.visible || n.autoHide <= 0 {
		return
	}

	n.elapsed += dt
	if n.elapsed >= n.autoHide {
		n.visible = false
		log.Printf("[Notification] Auto-hidden after %.1fs", n.elapsed)
	}
}

// Visible 横幅是否可见
func (n *Notification) Visible() bool {
	return n.visible
}

// Message 当前（或最后一次）显示的消息
func (n *Notification) Message() string {
	return n.message
}

// Remaining 距离自动隐藏的剩余秒数，不可见或不自动隐藏时返回 0
func (n *Notification) Remaining() float64 {
	if !n.visible || n.autoHide <= 0 {
		return 0
	}
	return n.autoHide - n.elapsed
}
