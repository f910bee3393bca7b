package engine

import (
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/engine/handlers"
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/systems"
)

// EnemyController решает, что делает проснувшийся враг (ctx.Actor) в свой ход.
// Решение исполняется теми же хендлерами, что и команды игрока.
type EnemyController interface {
	Decide(ctx handlers.Context, player domain.HexCoord) (action domain.ActionType, dir int)
}

// IdleController - враги просыпаются, но стоят на месте.
type IdleController struct{}

func (IdleController) Decide(handlers.Context, domain.HexCoord) (domain.ActionType, int) {
	return domain.ActionWait, 0
}

// ChaseController - враг идет к игроку и атакует вплотную.
type ChaseController struct{}

func (ChaseController) Decide(ctx handlers.Context, player domain.HexCoord) (domain.ActionType, int) {
	return systems.ComputeEnemyAction(ctx.Actor, player, ctx.Map, ctx.Entities)
}

// NewEnemyController выбирает контроллер по конфигу. Неизвестное значение - IdleController.
func NewEnemyController(ai EnemyAI) EnemyController {
	if ai == EnemyAIChase {
		return ChaseController{}
	}
	return IdleController{}
}
