package systems

import (
	"sort"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/logger"
	"github.com/sirupsen/logrus"
)

// SectorCount - количество секторов по 60 градусов.
const SectorCount = domain.DirectionCount

// SectorStats - итог обхода одного сектора.
type SectorStats struct {
	// Rings - номер последнего обработанного кольца (локальная координата x).
	Rings int `json:"rings"`
	// Radius - оценка дальности обзора в гексах: (Rings + 1) / 2.
	Radius int `json:"radius"`
	// Closed - сектор закрыт тенью целиком. false означает, что обход прервал радиус.
	Closed bool `json:"closed"`
}

// SweepStats - итог обхода всех шести секторов.
type SweepStats struct {
	Sectors [SectorCount]SectorStats `json:"sectors"`
}

// MaxRings возвращает самое дальнее кольцо среди секторов.
func (s SweepStats) MaxRings() int {
	best := 0
	for _, sec := range s.Sectors {
		if sec.Rings > best {
			best = sec.Rings
		}
	}
	return best
}

// shadow - заслоненный интервал наклонов [start, end].
type shadow struct {
	start Slope
	end   Slope
}

// Порядок важен: при равном наклоне сначала закрываются тени, потом тайлы,
// потом открываются тени и тайлы. Так касающиеся интервалы не оставляют щели.
type eventKind uint8

const (
	eventCloseShadow eventKind = iota
	eventCloseTile
	eventOpenShadow
	eventOpenTile
)

type sweepEvent struct {
	at   Slope
	kind eventKind
	tile int
}

// ringTile - кандидат текущего кольца.
type ringTile struct {
	coord   domain.HexCoord
	open    Slope
	close   Slope
	inRange bool
	blocks  bool
	marked  bool
}

// LatticeToHex переводит точку локальной решетки (x, y) сектора rot в координату карты:
// s = (2x - y) / 3, t = (2y - x) / 3, затем поворот на rot*60 и сдвиг на origin.
// Деление усекает к нулю. Для точек решетки (x + y кратно 3) оно точное.
func LatticeToHex(x, y, rot int, origin domain.HexCoord) domain.HexCoord {
	local := domain.Hex((2*x-y)/3, (2*y-x)/3)
	return origin.Add(local.Rotate(rot))
}

// HexToLattice - обратное преобразование для сектора 0 без сдвига.
func HexToLattice(h domain.HexCoord) (x, y int) {
	return 2*h.S + h.T, h.S + 2*h.T
}

// ComputeShadowcast вычисляет видимость от origin методом теневых интервалов
// в шести секторах по 60 градусов. origin передается в mark безусловно.
// Тайлы дальше maxRadius не помечаются и не заслоняют. При maxRadius <= 0
// помечается только origin.
func ComputeShadowcast(view OpacityView, origin domain.HexCoord, maxRadius int, mark MarkFunc) SweepStats {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":  "shadowcast",
		"origin":     origin,
		"max_radius": maxRadius,
	})

	// 1. Центр всегда виден
	mark(origin)

	// 2. Каждый сектор обходится независимо, повороты задаются числом шагов Rotate60
	var stats SweepStats
	for sector := 0; sector < SectorCount; sector++ {
		stats.Sectors[sector] = SweepSector(view, origin, sector, maxRadius, mark)
	}

	fovLogger.WithField("max_rings", stats.MaxRings()).Debug("Shadowcast complete.")
	return stats
}

// SweepSector обходит один сектор кольцо за кольцом, пока тени не закроют
// клин [-1, 1] целиком либо кольцо не выйдет за 2*maxRadius.
func SweepSector(view OpacityView, origin domain.HexCoord, sector, maxRadius int, mark MarkFunc) SectorStats {
	var shadows []shadow
	stats := SectorStats{}

	for x := 2; x <= 2*maxRadius; x++ {
		tiles := collectRing(view, origin, sector, x, maxRadius)
		shadows = sweepRing(tiles, shadows, mark)
		stats.Rings = x

		if coversWedge(shadows) {
			stats.Closed = true
			break
		}
	}

	stats.Radius = (stats.Rings + 1) / 2
	return stats
}

// collectRing перечисляет тайлы кольца x: y пробегает значения с x + y кратным 3, 0 <= y <= x.
// Проекция тайла на ось наклонов - [(2y - x - 2)/x, (2y - x + 2)/x], обрезанная до клина.
func collectRing(view OpacityView, origin domain.HexCoord, sector, x, maxRadius int) []ringTile {
	tiles := make([]ringTile, 0, x/3+1)
	for y := domain.PositiveMod(-x, 3); y <= x; y += 3 {
		coord := LatticeToHex(x, y, sector, origin)
		inRange := domain.Distance(origin, coord) <= maxRadius
		tiles = append(tiles, ringTile{
			coord:   coord,
			open:    clampToWedge(NewSlope(2*y-x-2, x)),
			close:   clampToWedge(NewSlope(2*y-x+2, x)),
			inRange: inRange,
			blocks:  inRange && view.Opaque(coord),
		})
	}
	return tiles
}

// sweepRing проходит события кольца в порядке возрастания наклона и возвращает тени для следующего кольца.
//
// shadowed считает только тени прошлых колец: тайл виден, пока хотя бы часть
// его проекции не покрыта ими. blocked дополнительно учитывает непрозрачные
// тайлы этого кольца и определяет новые тени.
func sweepRing(tiles []ringTile, shadows []shadow, mark MarkFunc) []shadow {
	events := make([]sweepEvent, 0, 2*(len(tiles)+len(shadows)))
	for _, sh := range shadows {
		events = append(events,
			sweepEvent{at: sh.start, kind: eventOpenShadow},
			sweepEvent{at: sh.end, kind: eventCloseShadow},
		)
	}
	for i, tile := range tiles {
		events = append(events,
			sweepEvent{at: tile.open, kind: eventOpenTile, tile: i},
			sweepEvent{at: tile.close, kind: eventCloseTile, tile: i},
		)
	}
	sort.Slice(events, func(i, j int) bool {
		if !events[i].at.Equal(events[j].at) {
			return events[i].at.Less(events[j].at)
		}
		return events[i].kind < events[j].kind
	})

	var (
		next     []shadow
		start    Slope
		inShadow bool
		shadowed int
		blocked  int
		active   = -1
	)

	for i := 0; i < len(events); {
		at := events[i].at

		// 1. Применяем все события с одинаковым наклоном
		for ; i < len(events) && events[i].at.Equal(at); i++ {
			ev := events[i]
			switch ev.kind {
			case eventCloseShadow:
				shadowed--
				blocked--
			case eventCloseTile:
				active = -1
				if tiles[ev.tile].blocks {
					blocked--
				}
			case eventOpenShadow:
				shadowed++
				blocked++
			case eventOpenTile:
				active = ev.tile
				if tiles[ev.tile].blocks {
					blocked++
				}
			}
		}

		// 2. Открываем или закрываем новую тень. Касающиеся тени склеиваются
		switch {
		case blocked > 0 && !inShadow:
			if n := len(next); n > 0 && next[n-1].end.Equal(at) {
				start = next[n-1].start
				next = next[:n-1]
			} else {
				start = at
			}
			inShadow = true
		case blocked == 0 && inShadow:
			next = append(next, shadow{start: start, end: at})
			inShadow = false
		}

		// 3. Между этим и следующим событием тайл освещен хотя бы частично
		if active >= 0 && shadowed == 0 && i < len(events) {
			tile := &tiles[active]
			if tile.inRange && !tile.marked {
				tile.marked = true
				mark(tile.coord)
			}
		}
	}

	return next
}

func coversWedge(shadows []shadow) bool {
	return len(shadows) == 1 &&
		shadows[0].start.LessOrEqual(wedgeLow) &&
		wedgeHigh.LessOrEqual(shadows[0].end)
}
