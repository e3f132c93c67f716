package game

import "log"

// RevealState 揭晓状态
type RevealState int

const (
	// RevealLocked 等待输入正确 PIN
	RevealLocked RevealState = iota
	// RevealUnlocked 内容可见（终态）
	RevealUnlocked
)

// String 返回状态名（用于日志）
func (s RevealState) String() string {
	switch s {
	case RevealLocked:
		return "Locked"
	case RevealUnlocked:
		return "Unlocked"
	default:
		return "Unknown"
	}
}

// LockGate PIN 锁状态机
//
// 状态转换：
//   - Locked --(Submit c, c == pin)--> Unlocked
//   - Locked --(Submit c, c != pin)--> Locked（无尝试次数限制）
//   - Unlocked 为终态，不会回到 Locked
//
// 比较为精确字符串相等：不去空白、不忽略大小写，不做任何归一化。
type LockGate struct {
	pin   *string
	state RevealState
}

// NewLockGate 根据心愿的 PIN 创建状态机
// pin 为 nil 时直接处于 Unlocked
func NewLockGate(pin *string) *LockGate {
	g := &LockGate{pin: pin, state: RevealUnlocked}
	if pin != nil {
		g.state = RevealLocked
	}
	return g
}

// State 返回当前状态
func (g *LockGate) State() RevealState {
	return g.state
}

// IsLocked 是否仍处于锁定状态
func (g *LockGate) IsLocked() bool {
	return g.state == RevealLocked
}

// Submit 提交一次输入
// 返回 true 仅当本次提交触发了 Locked → Unlocked 转换
// 已解锁时任何提交都返回 false 且不改变状态
func (g *LockGate) Submit(code string) bool {
	if g.state != RevealLocked {
		return false
	}
	if code != *g.pin {
		log.Printf("[LockGate] Incorrect code submitted (len=%d)", len(code))
		return false
	}
	g.state = RevealUnlocked
	log.Printf("[LockGate] State: %v -> %v", RevealLocked, RevealUnlocked)
	return true
}
