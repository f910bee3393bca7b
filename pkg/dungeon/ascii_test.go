package dungeon

import (
	"errors"
	"strings"
	"testing"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
)

func TestParseASCII(t *testing.T) {
	layout := "\n # # #\n# @ . b\n # + #"

	lvl, err := ParseASCII("tiny", layout)
	if err != nil {
		t.Fatalf("ParseASCII failed: %v", err)
	}

	tests := []struct {
		pos  domain.HexCoord
		want domain.TileKind
	}{
		{domain.Hex(1, -1), domain.TileWall},  // row 1, col 1
		{domain.Hex(2, -1), domain.TileWall},  // row 1, col 3
		{domain.Hex(1, -2), domain.TileWall},  // row 2, col 0
		{domain.Hex(2, -2), domain.TileFloor}, // '@'
		{domain.Hex(3, -2), domain.TileFloor},
		{domain.Hex(4, -2), domain.TileFloor}, // 'b'
		{domain.Hex(3, -3), domain.TileDoor},  // row 3, col 3
	}
	for _, tt := range tests {
		if got := lvl.Tiles.Kind(tt.pos); got != tt.want {
			t.Errorf("Tile at %v: expected %v, got %v", tt.pos, tt.want, got)
		}
	}

	if lvl.Tiles.Len() != 10 {
		t.Errorf("Expected 10 tiles, got %d", lvl.Tiles.Len())
	}
	if lvl.PlayerStart != domain.Hex(2, -2) {
		t.Errorf("Expected player at (2,-2), got %v", lvl.PlayerStart)
	}
	if len(lvl.Spawns) != 1 || lvl.Spawns[0].Kind != KindBatBlue || lvl.Spawns[0].Pos != domain.Hex(4, -2) {
		t.Errorf("Unexpected spawns: %+v", lvl.Spawns)
	}

	// Соседство в раскладке совпадает с гексовым
	if !domain.Hex(2, -2).IsAdjacent(domain.Hex(2, -1)) || !domain.Hex(2, -2).IsAdjacent(domain.Hex(3, -3)) {
		t.Error("Diagonal neighbours in the layout must be hex neighbours")
	}
}

func TestParseASCII_Errors(t *testing.T) {
	t.Run("No player", func(t *testing.T) {
		_, err := ParseASCII("empty", "# . #")
		if !errors.Is(err, ErrNoPlayer) {
			t.Errorf("Expected ErrNoPlayer, got %v", err)
		}
	})

	t.Run("Unknown glyph", func(t *testing.T) {
		_, err := ParseASCII("bad", "# @ X #")
		if !errors.Is(err, ErrUnknownGlyph) {
			t.Errorf("Expected ErrUnknownGlyph, got %v", err)
		}
	})
}

func TestFormatASCII_RoundTrip(t *testing.T) {
	lvl, err := Load("crossroads", 0)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	text := FormatASCII(lvl.Tiles, nil)
	// '@' нужен парсеру, ставим его на любую строку с полом
	text = strings.Replace(text, ".", "@", 1)

	again, err := ParseASCII("again", text)
	if err != nil {
		t.Fatalf("Formatted map does not parse: %v", err)
	}
	if again.Tiles.Len() != lvl.Tiles.Len() {
		t.Fatalf("Expected %d tiles after round trip, got %d", lvl.Tiles.Len(), again.Tiles.Len())
	}

	// Совпадение с точностью до сдвига: сдвиг считаем по верхнему левому тайлу
	shift := topLeft(lvl.Tiles).Sub(topLeft(again.Tiles))
	var mismatches int
	again.Tiles.Each(func(c domain.HexCoord, kind domain.TileKind) {
		if lvl.Tiles.Kind(c.Add(shift)) != kind {
			mismatches++
		}
	})
	if mismatches != 0 {
		t.Errorf("Round trip changed %d tiles", mismatches)
	}
}

// topLeft - тайл с наибольшим t, среди них - с наименьшим s.
func topLeft(m *domain.TileMap) domain.HexCoord {
	var best domain.HexCoord
	first := true
	m.Each(func(c domain.HexCoord, _ domain.TileKind) {
		if first || c.T > best.T || (c.T == best.T && c.S < best.S) {
			best = c
			first = false
		}
	})
	return best
}

func TestFormatASCII_Glyphs(t *testing.T) {
	m := domain.NewTileMap()
	m.Set(domain.Hex(0, 0), domain.TileFloor)
	m.Set(domain.Hex(1, 0), domain.TileWall)
	m.Set(domain.Hex(0, -1), domain.TileDoor)

	if got, want := FormatASCII(m, nil), " . #\n+"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	hideWalls := func(_ domain.HexCoord, kind domain.TileKind) rune {
		if kind == domain.TileWall {
			return 0
		}
		return DefaultGlyph(domain.HexCoord{}, kind)
	}
	if got, want := FormatASCII(m, hideWalls), " .\n+"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	if got := FormatASCII(domain.NewTileMap(), nil); got != "" {
		t.Errorf("Expected empty output for empty map, got %q", got)
	}
}
