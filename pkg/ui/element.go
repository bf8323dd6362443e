package ui

import "slices"

// 常用类名
const (
	ClassFadeIn  = "fade-in"
	ClassVisible = "visible"
	ClassHidden  = "hidden"
)

// Element 带有有序类名列表的界面元素
type Element struct {
	ID        string
	classes   []string
	animating []string // 等待动画结束信号移除的类名
}

// NewElement 创建元素
func NewElement(id string, classes ...string) *Element {
	e := &Element{ID: id}
	for _, class := range classes {
		e.AddClass(class)
	}
	return e
}

// AddClass 添加类名，已存在时忽略
func (e *Element) AddClass(class string) {
	if class == "" || e.HasClass(class) {
		return
	}
	e.classes = append(e.classes, class)
}

// RemoveClass 移除类名，不存在时忽略
func (e *Element) RemoveClass(class string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool {
		return c == class
	})
}

// HasClass 是否包含类名
func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.classes, class)
}

// Classes 返回类名列表副本
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

// Animate 添加动画类名，在 AnimationEnd 时移除
func (e *Element) Animate(class string) {
	e.AddClass(class)
	if !slices.Contains(e.animating, class) {
		e.animating = append(e.animating, class)
	}
}

// Animating 是否有动画类名等待移除
func (e *Element) Animating() bool {
	return len(e.animating) > 0
}

// AnimationEnd 动画结束信号：移除所有通过 Animate 添加的类名
func (e *Element) AnimationEnd() {
	for _, class := range e.animating {
		e.RemoveClass(class)
	}
	e.animating = e.animating[:0]
}
