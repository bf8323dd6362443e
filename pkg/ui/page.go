package ui

import "log"

// Page 页面状态
//
// 接收三类外部信号：页面就绪（Ready）、关闭按钮点击（CloseClicked）、
// 元素动画结束（Element.AnimationEnd），并每帧推进淡入与通知计时。
type Page struct {
	elements     []*Element
	notification *Notification

	fadeDelay   float64 // 就绪到淡入的延迟（秒）
	fadeElapsed float64
	ready       bool
	faded       bool
}

// NewPage 创建页面
//
// 参数：
//   - notification: 通知横幅，可为 nil（页面没有横幅）
//   - fadeDelaySeconds: 就绪信号后多久为 fade-in 元素添加 visible 类
//   - elements: 页面元素
func NewPage(notification *Notification, fadeDelaySeconds float64, elements ...*Element) *Page {
	return &Page{
		elements:     elements,
		notification: notification,
		fadeDelay:    fadeDelaySeconds,
	}
}

// Add 添加元素
func (p *Page) Add(e *Element) {
	p.elements = append(p.elements, e)
}

// Element 按 ID 查找元素
func (p *Page) Element(id string) (*Element, bool) {
	for _, e := range p.elements {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Query 返回所有包含指定类名的元素
func (p *Page) Query(class string) []*Element {
	var result []*Element
	for _, e := range p.elements {
		if e.HasClass(class) {
			result = append(result, e)
		}
	}
	return result
}

// Notification 返回页面的通知横幅
func (p *Page) Notification() *Notification {
	return p.notification
}

// Ready 页面就绪信号，开始淡入计时；重复调用无效
func (p *Page) Ready() {
	if p.ready {
		return
	}
	p.ready = true
	p.fadeElapsed = 0
	log.Printf("[Page] Ready: %d fade-in elements", len(p.Query(ClassFadeIn)))
}

// CloseClicked 关闭按钮点击信号
func (p *Page) CloseClicked() {
	if p.notification != nil {
		p.notification.Dismiss()
	}
}

// Update 推进淡入和通知计时
//
// 参数：
//   - dt: 时间增量（秒）
func (p *Page) Update(dt float64) {
	if p.ready && !p.faded {
		p.fadeElapsed += dt
		if p.fadeElapsed >= p.fadeDelay {
			for _, e := range p.Query(ClassFadeIn) {
				e.AddClass(ClassVisible)
			}
			p.faded = true
		}
	}

	if p.notification != nil {
		p.notification.Update(dt)
	}
}
