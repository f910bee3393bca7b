package systems

import (
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/logger"
)

// WakeVisible поднимает HasBeenVisible у врагов, чья клетка сейчас видна.
// Флаг никогда не сбрасывается. Возвращает только тех, кто проснулся сейчас.
func WakeVisible(entities []*domain.Entity, visible domain.CoordSet) []*domain.Entity {
	var woken []*domain.Entity
	for _, e := range entities {
		if e.Type != domain.EntityTypeEnemy || e.IsDead || e.HasBeenVisible {
			continue
		}
		if visible.Has(e.Pos) {
			e.HasBeenVisible = true
			woken = append(woken, e)
			logger.Log.WithField("entity_id", e.ID).WithField("pos", e.Pos).Info("Enemy noticed the player.")
		}
	}
	return woken
}
