package dungeon

import (
	"fmt"
	"strings"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
)

// ParseASCII разбирает текстовую гексовую раскладку.
// Строка row и колонка col переходят в s = (col + row) / 2, t = -row.
// Соседние по горизонтали гексы стоят через колонку, каждая следующая строка сдвинута на одну.
//
// Глифы: '#' стена, '.' пол, '+' '-' '/' '\' дверь, '@' пол и старт игрока,
// буквы из enemyGlyphs - пол и враг, пробел - нет тайла.
func ParseASCII(name, layout string) (*Level, error) {
	lvl := &Level{Name: name, Tiles: domain.NewTileMap()}
	hasPlayer := false

	for row, line := range strings.Split(layout, "\n") {
		for col, ch := range []rune(line) {
			if ch == ' ' || ch == '\r' {
				continue
			}

			h := domain.Hex((col+row)/2, -row)

			switch ch {
			case '#':
				lvl.Tiles.Set(h, domain.TileWall)
			case '.':
				lvl.Tiles.Set(h, domain.TileFloor)
			case '+', '-', '/', '\\':
				lvl.Tiles.Set(h, domain.TileDoor)
			case '@':
				lvl.Tiles.Set(h, domain.TileFloor)
				lvl.PlayerStart = h
				hasPlayer = true
			default:
				kind, ok := enemyGlyphs[ch]
				if !ok {
					return nil, fmt.Errorf("%w %q at row %d, col %d", ErrUnknownGlyph, ch, row, col)
				}
				lvl.Tiles.Set(h, domain.TileFloor)
				lvl.Spawns = append(lvl.Spawns, Spawn{Kind: kind, Pos: h})
			}
		}
	}

	if !hasPlayer {
		return nil, ErrNoPlayer
	}
	return lvl, nil
}

// GlyphFunc выбирает символ для гекса при выводе. 0 - оставить пустым.
type GlyphFunc func(h domain.HexCoord, kind domain.TileKind) rune

// DefaultGlyph рисует тайл как в раскладке.
func DefaultGlyph(_ domain.HexCoord, kind domain.TileKind) rune {
	switch kind {
	case domain.TileFloor:
		return '.'
	case domain.TileWall:
		return '#'
	case domain.TileDoor:
		return '+'
	}
	return 0
}

// FormatASCII - обратное к ParseASCII преобразование (с точностью до сдвига).
// Верхняя строка - наибольший t. Пустая карта дает пустую строку.
func FormatASCII(m *domain.TileMap, glyph GlyphFunc) string {
	if m.Len() == 0 {
		return ""
	}
	if glyph == nil {
		glyph = DefaultGlyph
	}

	// 1. Границы: колонка 2s + t, строка maxT - t
	first := true
	var minCol, maxCol, minT, maxT int
	m.Each(func(c domain.HexCoord, _ domain.TileKind) {
		col := 2*c.S + c.T
		if first {
			minCol, maxCol, minT, maxT = col, col, c.T, c.T
			first = false
			return
		}
		minCol = min(minCol, col)
		maxCol = max(maxCol, col)
		minT = min(minT, c.T)
		maxT = max(maxT, c.T)
	})

	// 2. Заполняем сетку
	grid := make([][]rune, maxT-minT+1)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", maxCol-minCol+1))
	}
	m.Each(func(c domain.HexCoord, kind domain.TileKind) {
		if g := glyph(c, kind); g != 0 {
			grid[maxT-c.T][2*c.S+c.T-minCol] = g
		}
	})

	// 3. Склеиваем строки без хвостовых пробелов
	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}
