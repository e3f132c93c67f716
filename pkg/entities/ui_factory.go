package entities

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/wishbloom/pkg/components"
	"github.com/decker502/wishbloom/pkg/ecs"
)

// IconButtonSpec 圆形图标按钮（音乐开关）的参数
type IconButtonSpec struct {
	X, Y      float64 // 左上角
	Size      float64 // 直径
	Icon      components.ButtonIcon
	Fill      color.RGBA
	IconColor color.RGBA
	OnClick   func()
}

// NewIconButton 创建圆形图标按钮实体
// 图标按钮点击不会被当作全局手势（StopPropagation）
func NewIconButton(em *ecs.EntityManager, spec IconButtonSpec) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: spec.X, Y: spec.Y})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Icon:            spec.Icon,
		TextColor:       spec.IconColor,
		Width:           spec.Size,
		Height:          spec.Size,
		Fill:            spec.Fill,
		CornerRadius:    spec.Size / 2,
		State:           components.UINormal,
		Enabled:         true,
		StopPropagation: true,
		OnClick:         spec.OnClick,
	})

	return entity
}

// TextButtonSpec 文字按钮的参数
type TextButtonSpec struct {
	X, Y          float64
	Width, Height float64
	Label         string
	Font          *text.GoTextFace
	Icon          components.ButtonIcon
	Fill          color.RGBA
	TextColor     color.RGBA
	OnClick       func()
}

// NewTextButton 创建胶囊形文字按钮实体（解锁按钮）
func NewTextButton(em *ecs.EntityManager, spec TextButtonSpec) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: spec.X, Y: spec.Y})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Label:           spec.Label,
		Font:            spec.Font,
		TextColor:       spec.TextColor,
		Icon:            spec.Icon,
		Width:           spec.Width,
		Height:          spec.Height,
		Fill:            spec.Fill,
		CornerRadius:    spec.Height / 2,
		State:           components.UINormal,
		Enabled:         true,
		StopPropagation: true,
		OnClick:         spec.OnClick,
	})

	return entity
}

// NewPinInput 创建 PIN 输入框实体
// 输入以圆点遮罩显示；onSubmit 收到的是原样文本
func NewPinInput(em *ecs.EntityManager, x, y, width, height float64, maxLength int, placeholder string, onSubmit func(string)) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.TextInputComponent{
		Width:       width,
		Height:      height,
		MaxLength:   maxLength,
		Placeholder: placeholder,
		Masked:      true,
		OnSubmit:    onSubmit,
	})

	return entity
}

// NewPinKeypadEntity 创建屏幕数字键盘实体（初始隐藏）
// 仅在移动端创建，桌面端使用物理键盘
func NewPinKeypadEntity(em *ecs.EntityManager, target ecs.EntityID) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PinKeypadComponent{
		TargetInputEntity: target,
	})
	return entity
}
