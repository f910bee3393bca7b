package dungeon

import (
	"errors"
	"fmt"
	"sort"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
)

var (
	ErrNoPlayer     = errors.New("layout has no player start")
	ErrUnknownGlyph = errors.New("unknown layout glyph")
	ErrUnknownLevel = errors.New("unknown level")
)

// RandomLevel - имя уровня, который собирается генератором из сида.
const RandomLevel = "random"

// Spawn - точка появления врага.
type Spawn struct {
	Kind string          `json:"kind"`
	Pos  domain.HexCoord `json:"pos"`
}

// Level - загруженный уровень: карта, старт игрока и враги.
// Сессия не меняет Level, она работает с копией карты (Tiles.Clone).
type Level struct {
	Name        string
	Tiles       *domain.TileMap
	PlayerStart domain.HexCoord
	Spawns      []Spawn
}

// SpawnEnemies создает свежие (спящие) сущности по точкам появления.
func (l *Level) SpawnEnemies() []*domain.Entity {
	enemies := make([]*domain.Entity, 0, len(l.Spawns))
	counters := make(map[string]int)
	for _, sp := range l.Spawns {
		counters[sp.Kind]++
		enemies = append(enemies, &domain.Entity{
			ID:   fmt.Sprintf("%s_%d", sp.Kind, counters[sp.Kind]),
			Type: domain.EntityTypeEnemy,
			Kind: sp.Kind,
			Pos:  sp.Pos,
		})
	}
	return enemies
}

// Load возвращает встроенный уровень по имени. "random" собирается генератором из seed.
func Load(name string, seed int64) (*Level, error) {
	if name == RandomLevel {
		return Generate(seed), nil
	}

	layout, ok := builtinLevels[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}

	lvl, err := ParseASCII(name, layout)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return lvl, nil
}

// Names - имена всех доступных уровней, включая "random".
func Names() []string {
	names := make([]string, 0, len(builtinLevels)+1)
	for name := range builtinLevels {
		names = append(names, name)
	}
	names = append(names, RandomLevel)
	sort.Strings(names)
	return names
}
