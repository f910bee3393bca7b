package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/engine/handlers"
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/engine/handlers/actions"
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/engine/handlers/admin"
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/systems"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/api"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/dungeon"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/logger"
	"github.com/sirupsen/logrus"
)

var ErrUnknownAction = errors.New("unknown action")

// PlayerID - ID сущности игрока в любой сессии.
const PlayerID = "player"

// Session - одна партия: своя копия карты, игрок, враги и видимость.
// Не потокобезопасна, доступ сериализует GameService.
type Session struct {
	ID     string
	Config Config
	Level  *dungeon.Level

	Map     *domain.TileMap
	Player  *domain.Entity
	Enemies []*domain.Entity

	Vision     *Vision
	Controller EnemyController

	// Turn - количество завершенных ходов с начала (или рестарта).
	Turn int

	Logs []api.LogEntry

	handlers map[domain.ActionType]handlers.HandlerFunc
}

// NewSession загружает уровень из конфига и сразу считает первую видимость.
func NewSession(id string, cfg Config) (*Session, error) {
	lvl, err := dungeon.Load(cfg.Level, cfg.Seed)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:         id,
		Config:     cfg,
		Level:      lvl,
		Vision:     NewVision(cfg.Algorithm, cfg.MaxRadius),
		Controller: NewEnemyController(cfg.EnemyAI),
		handlers:   make(map[domain.ActionType]handlers.HandlerFunc),
	}
	s.registerHandlers()
	s.reset()

	logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"session":   id,
		"level":     lvl.Name,
		"algorithm": cfg.Algorithm,
	}).Info("Session created")

	return s, nil
}

func (s *Session) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
	s.handlers[domain.ActionCheatVision] = handlers.WithEmptyPayload(admin.HandleCheatVision)
	s.handlers[domain.ActionReset] = handlers.WithEmptyPayload(admin.HandleReset)
}

// Act выполняет одну команду игрока. Если команда тратит ход, после нее
// ходят проснувшиеся враги, а затем вызывается OnTurnResolved.
func (s *Session) Act(action domain.ActionType, payload json.RawMessage) error {
	handler, ok := s.handlers[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	// 1. Действие игрока
	result, err := handler(s.context(s.Player), payload)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	s.addResult(result)

	if !action.PassesTurn() {
		return nil
	}

	// 2. Ход врагов
	s.runEnemyTurns()

	// 3. Видимость, туман, пробуждение. Разбуженные сейчас враги пойдут только в следующем ходу.
	s.Turn++
	s.OnTurnResolved(s.Player.Pos)

	return nil
}

// OnTurnResolved пересчитывает видимость от origin, дополняет туман войны
// и будит врагов, чьи клетки стали видны. Возвращает разбуженных.
func (s *Session) OnTurnResolved(origin domain.HexCoord) []*domain.Entity {
	visible := s.Vision.RecomputeVisibility(s.Map, origin)
	s.Vision.FoldIntoFog(visible)

	woken := systems.WakeVisible(s.Enemies, visible)
	for _, e := range woken {
		s.AddLog(fmt.Sprintf("Вы замечаете: %s.", e.Kind), "INFO")
	}
	return woken
}

// runEnemyTurns проводит ход каждого проснувшегося живого врага через те же хендлеры, что и у игрока.
func (s *Session) runEnemyTurns() {
	for _, enemy := range OrderEnemies(s.Enemies, s.Player.Pos) {
		if enemy.IsDead {
			continue
		}

		action, dir := s.Controller.Decide(s.context(enemy), s.Player.Pos)

		var payload json.RawMessage
		switch action {
		case domain.ActionMove:
			payload, _ = json.Marshal(api.DirectionPayload{Dir: dir})
		case domain.ActionWait:
		default:
			continue
		}

		result, err := s.handlers[action](s.context(enemy), payload)
		if err != nil {
			logger.Log.WithError(err).WithField("entity_id", enemy.ID).Warn("Enemy action failed")
			continue
		}
		s.addResult(result)
	}
}

// ToggleCheatVision переключает режим "видно всё". Ход не тратится.
func (s *Session) ToggleCheatVision() bool {
	s.Vision.SetCheat(!s.Vision.CheatEnabled())
	return s.Vision.CheatEnabled()
}

// Restart заново загружает уровень и сбрасывает туман войны и пробуждение врагов.
func (s *Session) Restart() error {
	lvl, err := dungeon.Load(s.Config.Level, s.Config.Seed)
	if err != nil {
		return err
	}
	s.Level = lvl
	s.reset()
	return nil
}

func (s *Session) reset() {
	s.Map = s.Level.Tiles.Clone()
	s.Player = &domain.Entity{
		ID:             PlayerID,
		Type:           domain.EntityTypePlayer,
		Kind:           "player",
		Pos:            s.Level.PlayerStart,
		HasBeenVisible: true,
	}
	s.Enemies = s.Level.SpawnEnemies()
	s.Turn = 0
	s.Vision.ResetFog()
	s.OnTurnResolved(s.Player.Pos)
}

// ActiveEnemies - живые враги, которые уже проснулись.
func (s *Session) ActiveEnemies() []*domain.Entity {
	var out []*domain.Entity
	for _, e := range s.Enemies {
		if !e.IsInactive() {
			out = append(out, e)
		}
	}
	return out
}

// EnemyAt возвращает живого врага на клетке или nil.
func (s *Session) EnemyAt(h domain.HexCoord) *domain.Entity {
	for _, e := range s.Enemies {
		if !e.IsDead && e.Pos == h {
			return e
		}
	}
	return nil
}

func (s *Session) context(actor *domain.Entity) handlers.Context {
	entities := make([]*domain.Entity, 0, len(s.Enemies)+1)
	entities = append(entities, s.Player)
	entities = append(entities, s.Enemies...)

	return handlers.Context{
		Map:      s.Map,
		Entities: entities,
		Actor:    actor,
		Control:  s,
	}
}

func (s *Session) addResult(result handlers.Result) {
	if result.Msg == "" {
		return
	}
	msgType := result.MsgType
	if msgType == "" {
		msgType = "INFO"
	}
	s.AddLog(result.Msg, msgType)
}

// AddLog добавляет запись в лог сессии. Лог уходит клиенту со следующим снимком.
func (s *Session) AddLog(text, logType string) {
	s.Logs = append(s.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%s_%d", s.ID, time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	logger.Log.WithFields(logrus.Fields{
		"session":   s.ID,
		"component": "game_log",
		"log_type":  logType,
	}).Debug(text)
}
