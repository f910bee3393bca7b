package systems

import (
	"sort"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ComputeEnemyAction решает, что делать проснувшемуся врагу.
// Возвращает (команда, направление). Враг идет к цели, а вплотную - бьет ее (MOVE в ее сторону).
func ComputeEnemyAction(enemy *domain.Entity, target domain.HexCoord, tiles *domain.TileMap, entities []*domain.Entity) (domain.ActionType, int) {
	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "enemy_ai",
		"entity_id": enemy.ID,
		"pos":       enemy.Pos,
		"target":    target,
	})

	if enemy.IsInactive() {
		return domain.ActionWait, 0
	}

	// 1. Цель рядом -> атакуем
	if dir, ok := enemy.Pos.DirectionTo(target); ok {
		aiLogger.Debug("Target adjacent. Action: ATTACK")
		return domain.ActionMove, dir
	}

	// 2. Иначе шаг, сокращающий расстояние. При равенстве ближе по прямой, потом меньший индекс.
	dist := enemy.Pos.DistanceTo(target)
	candidates := make([]int, 0, domain.DirectionCount)
	for dir := 0; dir < domain.DirectionCount; dir++ {
		next := enemy.Pos.Neighbor(dir)
		if next.DistanceTo(target) >= dist {
			continue
		}
		if !CalculateMove(enemy, dir, tiles, entities).HasMoved {
			continue
		}
		candidates = append(candidates, dir)
	}

	if len(candidates) == 0 {
		aiLogger.Debug("Path is blocked. Action: WAIT")
		return domain.ActionWait, 0
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return domain.DistanceSquared(enemy.Pos.Neighbor(candidates[i]), target) <
			domain.DistanceSquared(enemy.Pos.Neighbor(candidates[j]), target)
	})

	aiLogger.WithField("dir", candidates[0]).Debug("Path found. Action: MOVE")
	return domain.ActionMove, candidates[0]
}
