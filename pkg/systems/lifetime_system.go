package systems

import (
	"github.com/decker502/wishbloom/pkg/components"
	"github.com/decker502/wishbloom/pkg/ecs"
)

// LifetimeSystem 推进带有 LifetimeComponent 的实体（提示条、彩纸），到期后销毁
type LifetimeSystem struct {
	entityManager *ecs.EntityManager

	// onExpire 实体过期、被标记销毁之前调用（可为 nil）
	onExpire func(id ecs.EntityID)
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// OnExpire 注册过期回调，用于让提示条等重新排列
func (s *LifetimeSystem) OnExpire(fn func(id ecs.EntityID)) {
	s.onExpire = fn
}

// Update 累加存在时间，过期实体只处理一次
func (s *LifetimeSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok || lifetime.IsExpired {
			continue
		}

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime < lifetime.MaxLifetime {
			continue
		}

		lifetime.IsExpired = true
		if s.onExpire != nil {
			s.onExpire(id)
		}
		s.entityManager.DestroyEntity(id)
	}
}
