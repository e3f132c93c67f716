package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/wishbloom/pkg/components"
	"github.com/decker502/wishbloom/pkg/ecs"
)

// 光标闪烁间隔（秒）
const cursorBlinkInterval = 0.5

// TextInputSystem 文本输入系统
// 处理 PIN 输入框的键盘输入、光标闪烁和提交
type TextInputSystem struct {
	entityManager *ecs.EntityManager
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager) *TextInputSystem {
	return &TextInputSystem{
		entityManager: em,
	}
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(deltaTime float64) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		if !input.IsFocused {
			input.CursorVisible = false
			continue
		}

		s.updateCursorBlink(input, deltaTime)
		s.handleKeyboardInput(input)
	}
}

// Focus 让指定输入框获得焦点，其他输入框失去焦点
func (s *TextInputSystem) Focus(target ecs.EntityID) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		input.IsFocused = entityID == target
		if input.IsFocused {
			showCursor(input)
		}
	}
}

// FocusedInput 返回当前获得焦点的输入框
func (s *TextInputSystem) FocusedInput() (*components.TextInputComponent, bool) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		if input.IsFocused {
			return input, true
		}
	}
	return nil, false
}

// updateCursorBlink 更新光标闪烁状态
func (s *TextInputSystem) updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= cursorBlinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// keyRepeats 第 1 帧立即响应，按住 30 帧后每 3 帧重复一次
func keyRepeats(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%3 == 0)
}

// handleKeyboardInput 处理键盘输入
func (s *TextInputSystem) handleKeyboardInput(input *components.TextInputComponent) {
	if runes := ebiten.AppendInputChars(nil); len(runes) > 0 {
		InsertText(input, string(runes))
	}
	if keyRepeats(ebiten.KeyBackspace) {
		DeleteCharBefore(input)
	}
	if keyRepeats(ebiten.KeyDelete) {
		DeleteCharAfter(input)
	}
	if keyRepeats(ebiten.KeyArrowLeft) {
		MoveCursor(input, -1)
	}
	if keyRepeats(ebiten.KeyArrowRight) {
		MoveCursor(input, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		MoveCursor(input, -len([]rune(input.Text)))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		MoveCursor(input, len([]rune(input.Text)))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		SubmitInput(input)
	}
}

// showCursor 输入时光标保持可见
func showCursor(input *components.TextInputComponent) {
	input.CursorBlinkTimer = 0
	input.CursorVisible = true
}

// InsertText 在光标位置插入文本
// PIN 可以是任意字符，这里不做过滤；超过 MaxLength 的部分被丢弃
func InsertText(input *components.TextInputComponent, str string) {
	newRunes := []rune(str)
	if len(newRunes) == 0 {
		return
	}

	runes := []rune(input.Text)
	if input.MaxLength > 0 {
		room := input.MaxLength - len(runes)
		if room <= 0 {
			log.Printf("[TextInputSystem] Max length reached (%d)", input.MaxLength)
			return
		}
		if len(newRunes) > room {
			newRunes = newRunes[:room]
		}
	}

	pos := clampCursor(input.CursorPosition, len(runes))
	result := make([]rune, 0, len(runes)+len(newRunes))
	result = append(result, runes[:pos]...)
	result = append(result, newRunes...)
	result = append(result, runes[pos:]...)

	input.Text = string(result)
	input.CursorPosition = pos + len(newRunes)
	showCursor(input)
}

// DeleteCharBefore 删除光标前的字符（退格）
func DeleteCharBefore(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	pos := clampCursor(input.CursorPosition, len(runes))
	if pos == 0 {
		return
	}
	input.Text = string(append(runes[:pos-1:pos-1], runes[pos:]...))
	input.CursorPosition = pos - 1
	showCursor(input)
}

// DeleteCharAfter 删除光标后的字符（Delete 键），光标位置不变
func DeleteCharAfter(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	pos := clampCursor(input.CursorPosition, len(runes))
	if pos >= len(runes) {
		return
	}
	input.Text = string(append(runes[:pos:pos], runes[pos+1:]...))
	showCursor(input)
}

// MoveCursor 按字符移动光标
func MoveCursor(input *components.TextInputComponent, delta int) {
	input.CursorPosition = clampCursor(input.CursorPosition+delta, len([]rune(input.Text)))
	showCursor(input)
}

// SubmitInput 将当前文本原样交给 OnSubmit
func SubmitInput(input *components.TextInputComponent) {
	if input.OnSubmit == nil {
		return
	}
	input.OnSubmit(input.Text)
}

// ClearInput 清空输入框
func ClearInput(input *components.TextInputComponent) {
	input.Text = ""
	input.CursorPosition = 0
}

func clampCursor(pos, length int) int {
	if pos < 0 {
		return 0
	}
	if pos > length {
		return length
	}
	return pos
}
