package engine

import (
	"fmt"
	"os"
	"testing"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// testConfig - детерминированный конфиг для тестов.
func testConfig(level string, ai EnemyAI) Config {
	cfg := NewConfig()
	cfg.Seed = 1
	cfg.Level = level
	cfg.EnemyAI = ai
	return cfg
}

func newTestSession(t *testing.T, level string, ai EnemyAI) *Session {
	t.Helper()
	s, err := NewSession("test", testConfig(level, ai))
	if err != nil {
		t.Fatalf("NewSession(%q) failed: %v", level, err)
	}
	return s
}

// moveDir - raw payload для MOVE.
func moveDir(dir int) []byte {
	return []byte(fmt.Sprintf(`{"dir":%d}`, dir))
}

// diskWithWall - круг пола радиуса 3 вокруг нуля со стеной в (1,0).
func diskWithWall() *domain.TileMap {
	m := domain.NewTileMap()
	origin := domain.Hex(0, 0)
	for s := -3; s <= 3; s++ {
		for t := -3; t <= 3; t++ {
			if c := domain.Hex(s, t); domain.Distance(origin, c) <= 3 {
				m.Set(c, domain.TileFloor)
			}
		}
	}
	m.Set(domain.Hex(1, 0), domain.TileWall)
	return m
}

func hasLog(s *Session, text string) bool {
	for _, l := range s.Logs {
		if l.Text == text {
			return true
		}
	}
	return false
}
