package systems

import (
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// ComputeFloodFill - видимость по связности: BFS от origin через прозрачные клетки.
// Непрозрачная клетка помечается, но дальше не раскрывается, поэтому стены
// вокруг комнаты видны, а то, что за ними, - нет. Прямые линии не проверяются.
// Возвращает число посещенных координат.
func ComputeFloodFill(view OpacityView, origin domain.HexCoord, maxRadius int, mark MarkFunc) int {
	visited := mapset.New[domain.HexCoord]()
	visited.Put(origin)
	queue := []domain.HexCoord{origin}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		// 1. Все, что попало в очередь, видно
		mark(cur)

		// 2. Сквозь непрозрачное не распространяемся
		if view.Opaque(cur) {
			continue
		}

		// 3. Раскрываем соседей в пределах радиуса
		for _, n := range cur.Neighbors() {
			if visited.Has(n) || domain.Distance(origin, n) > maxRadius {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "floodfill",
		"origin":    origin,
		"visited":   visited.Size(),
	}).Debug("Flood fill complete.")

	return visited.Size()
}
