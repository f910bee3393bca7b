package dungeon

import (
	"math/rand"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
)

// Константы генерации
const (
	RoomCount      = 6
	EnemiesPerRoom = 4
)

// roomOrigins - нижние углы комнат с врагами. Первая комната (0, -6) - стартовая, без врагов.
var roomOrigins = [RoomCount]domain.HexCoord{
	{S: 3, T: -12}, {S: 4, T: -3}, {S: 7, T: -9}, {S: 10, T: -15}, {S: 11, T: -6}, {S: 14, T: -12},
}

// roomSpawnOffsets - четыре точки появления внутри комнаты относительно её угла.
var roomSpawnOffsets = [EnemiesPerRoom]domain.HexCoord{
	{S: 3, T: 2}, {S: 5, T: 2}, {S: 2, T: 4}, {S: 4, T: 4},
}

// defaultCohort - состав врагов. Перемешивается сидом, по четыре на комнату.
var defaultCohort = []string{
	KindSkeletonWhite, KindSkeletonWhite, KindSkeletonWhite, KindSkeletonWhite,
	KindSkeletonWhite, KindSkeletonWhite, KindSlimeBlue, KindSlimeBlue,
	KindSlimeBlue, KindSlimeBlue, KindBatBlue, KindBatBlue,
	KindBatBlue, KindBatBlue, KindBatBlue, KindBatRed,
	KindGhost, KindGhost, KindGhost, KindGhost,
	KindSkeletonWhite, KindSkeletonWhite, KindGhost, KindGhost,
}

// Generate создает уровень "random": семь шестиугольных комнат с общими стенами,
// соединенных дверями. Сид определяет, какие враги в какой комнате.
func Generate(seed int64) *Level {
	b := NewLevel(RandomLevel, rand.New(rand.NewSource(seed)))

	// 1. Комнаты
	b.HexRoom(0, -6, 7, 6, 3, 3).
		HexRoom(3, -12, 7, 6, 3, 3).
		HexRoom(4, -3, 7, 6, 3, 3).
		HexRoom(7, -9, 7, 6, 3, 3).
		HexRoom(10, -15, 7, 6, 3, 3).
		HexRoom(11, -6, 7, 6, 3, 3).
		HexRoom(14, -12, 7, 6, 3, 3)

	// 2. Двери в общих стенах
	b.Door(5, -6).Door(7, -5).Door(5, -1).
		Door(10, -10).Door(12, -9).Door(11, -2).Door(12, -4).
		Door(15, -10).Door(16, -6)

	// 3. Игрок в стартовой комнате
	b.Player(3, -3)

	// 4. Враги
	cohort := b.Shuffle(defaultCohort)
	for i, origin := range roomOrigins {
		for j, off := range roomSpawnOffsets {
			p := origin.Add(off)
			b.Enemy(p.S, p.T, cohort[i*EnemiesPerRoom+j])
		}
	}

	return b.Build()
}
