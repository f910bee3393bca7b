package actions

import (
	"fmt"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/engine/handlers"
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/systems"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/api"
)

// HandleMove - шаг в одно из шести направлений.
// Игрок, шагнувший во врага, бьет его. Враг, шагнувший в игрока, атакует.
// Дверь открывается игроком, сам он при этом остается на месте.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	res := systems.CalculateMove(ctx.Actor, p.Dir, ctx.Map, ctx.Entities)
	isPlayer := ctx.Actor.Type == domain.EntityTypePlayer

	if res.BlockedBy != nil {
		switch {
		case isPlayer && res.BlockedBy.Type == domain.EntityTypeEnemy:
			res.BlockedBy.IsDead = true
			return handlers.Result{Msg: fmt.Sprintf("Вы сразили противника: %s.", res.BlockedBy.Kind), MsgType: "COMBAT"}, nil
		case !isPlayer && res.BlockedBy.Type == domain.EntityTypePlayer:
			return handlers.Result{Msg: fmt.Sprintf("%s атакует вас.", ctx.Actor.Kind), MsgType: "COMBAT"}, nil
		}
		return handlers.EmptyResult(), nil
	}

	if res.OpensDoor && isPlayer {
		ctx.Map.Set(res.Target, domain.TileFloor)
		return handlers.Result{Msg: "Дверь открывается.", MsgType: "INFO"}, nil
	}

	if res.HasMoved {
		ctx.Actor.Pos = res.Target
	}

	return handlers.EmptyResult(), nil
}
