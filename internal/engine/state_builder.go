package engine

import (
	"sort"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/api"
)

// BuildState создает "снимок" сессии для клиента: тайлы, которые нужно рисовать,
// видимых существ и накопившиеся логи.
func (s *Session) BuildState() *api.ServerResponse {
	vision := s.Vision

	// 1. Формирование карты (Map DTO): исследованное или раскрытое читом
	var mapDTO []api.TileView
	s.Map.Each(func(c domain.HexCoord, kind domain.TileKind) {
		if !vision.ShouldRender(c) {
			return
		}
		mapDTO = append(mapDTO, api.TileView{
			S:          c.S,
			T:          c.T,
			Kind:       kind.String(),
			IsVisible:  vision.IsVisible(c),
			IsExplored: vision.HasBeenVisible(c),
		})
	})
	sort.Slice(mapDTO, func(i, j int) bool {
		if mapDTO[i].T != mapDTO[j].T {
			return mapDTO[i].T > mapDTO[j].T
		}
		return mapDTO[i].S < mapDTO[j].S
	})

	// 2. Формирование списка сущностей: себя видим всегда, остальных - если они в зоне видимости
	viewEntities := []api.EntityView{toEntityView(s.Player)}
	for _, e := range s.Enemies {
		if e.IsDead {
			continue
		}
		if vision.CheatEnabled() || vision.IsVisible(e.Pos) {
			viewEntities = append(viewEntities, toEntityView(e))
		}
	}

	// Копия логов
	logsCopy := make([]api.LogEntry, len(s.Logs))
	copy(logsCopy, s.Logs)

	return &api.ServerResponse{
		Type:        "UPDATE",
		SessionID:   s.ID,
		Level:       s.Level.Name,
		Turn:        s.Turn,
		Player:      &api.PlayerView{S: s.Player.Pos.S, T: s.Player.Pos.T},
		CheatVision: vision.CheatEnabled(),
		Map:         mapDTO,
		Entities:    viewEntities,
		Logs:        logsCopy,
	}
}

// toEntityView конвертирует доменную сущность в DTO для отправки клиенту.
func toEntityView(e *domain.Entity) api.EntityView {
	view := api.EntityView{
		ID:      e.ID,
		Type:    e.Type,
		Kind:    e.Kind,
		IsAwake: e.HasBeenVisible,
	}
	view.Pos.S = e.Pos.S
	view.Pos.T = e.Pos.T
	return view
}
