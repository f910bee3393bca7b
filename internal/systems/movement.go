package systems

import (
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	Target    domain.HexCoord
	HasMoved  bool
	BlockedBy *domain.Entity // Если врезались в кого-то (для атаки)
	IsWall    bool           // Стена или пустота за краем карты
	OpensDoor bool           // Впереди закрытая дверь
}

// CalculateMove вычисляет результат шага в направлении dir. Не меняет состояние мира!
func CalculateMove(e *domain.Entity, dir int, tiles *domain.TileMap, entities []*domain.Entity) MovementResult {
	target := e.Pos.Neighbor(dir)
	res := MovementResult{Target: target}

	// 1. Проверка тайла
	switch tiles.Kind(target) {
	case domain.TileFloor:
	case domain.TileDoor:
		res.OpensDoor = true
		return res
	default:
		res.IsWall = true
		return res
	}

	// 2. Проверка сущностей. Мертвые не мешают.
	for _, other := range entities {
		if other.ID == e.ID || other.IsDead {
			continue
		}
		if other.Pos == target {
			res.BlockedBy = other
			return res
		}
	}

	res.HasMoved = true
	return res
}
