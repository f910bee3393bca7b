package dungeon

import (
	"math/rand"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
)

// LevelBuilder предоставляет fluent API для сборки уровней из гексовых комнат.
// Поздние вызовы перезаписывают ранние: общие стены соседних комнат не дублируются,
// а двери ставятся поверх стен.
type LevelBuilder struct {
	name   string
	tiles  *domain.TileMap
	start  domain.HexCoord
	spawns []Spawn
	rng    *rand.Rand
}

// NewLevel создает новый builder для уровня
func NewLevel(name string, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		name:  name,
		tiles: domain.NewTileMap(),
		rng:   rng,
	}
}

// HexRoom - параллелограмм [minS, minS+sLen] x [minT, minT+tLen] со срезанными углами.
// trimMin и trimMax срезают углы у (minS, minT) и (maxS, maxT), так что при
// trim = половине стороны получается шестиугольник. Граница - стены, внутри - пол.
func (b *LevelBuilder) HexRoom(minS, minT, sLen, tLen, trimMin, trimMax int) *LevelBuilder {
	maxS := minS + sLen
	maxT := minT + tLen

	for s := minS; s <= maxS; s++ {
		for t := minT; t <= maxT; t++ {
			slackMin := (s - minS + t - minT) - trimMin
			slackMax := (maxS - s + maxT - t) - trimMax
			if slackMin < 0 || slackMax < 0 {
				continue
			}

			kind := domain.TileWall
			if minS < s && s < maxS && minT < t && t < maxT && slackMin > 0 && slackMax > 0 {
				kind = domain.TileFloor
			}
			b.tiles.Set(domain.Hex(s, t), kind)
		}
	}
	return b
}

// Door ставит дверь (обычно в общую стену двух комнат).
func (b *LevelBuilder) Door(s, t int) *LevelBuilder {
	b.tiles.Set(domain.Hex(s, t), domain.TileDoor)
	return b
}

// Player задает стартовую позицию игрока.
func (b *LevelBuilder) Player(s, t int) *LevelBuilder {
	b.start = domain.Hex(s, t)
	return b
}

// Enemy добавляет точку появления врага.
func (b *LevelBuilder) Enemy(s, t int, kind string) *LevelBuilder {
	b.spawns = append(b.spawns, Spawn{Kind: kind, Pos: domain.Hex(s, t)})
	return b
}

// Shuffle перемешивает когорту врагов генератором уровня.
func (b *LevelBuilder) Shuffle(cohort []string) []string {
	out := append([]string(nil), cohort...)
	b.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Build возвращает собранный уровень.
func (b *LevelBuilder) Build() *Level {
	return &Level{
		Name:        b.name,
		Tiles:       b.tiles,
		PlayerStart: b.start,
		Spawns:      b.spawns,
	}
}
