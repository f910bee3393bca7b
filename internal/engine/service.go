package engine

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/network"
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/systems"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/api"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/dungeon"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/logger"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/utils"
	"github.com/sirupsen/logrus"
)

var ErrUnknownSession = errors.New("unknown session")

// GameService хранит все сессии и сериализует команды к ним.
// Снимки после каждой команды уходят подписчикам через Hub.
type GameService struct {
	Config Config
	Hub    *network.Broadcaster

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewService(cfg Config) *GameService {
	return &GameService{
		Config:   cfg,
		Hub:      network.NewBroadcaster(),
		sessions: make(map[string]*Session),
	}
}

// Attach возвращает ID существующей сессии по токену или создает новую.
// Пустой или неизвестный токен всегда дает новую сессию.
func (s *GameService) Attach(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attach(token)
}

// Join привязывает соединение к сессии и подписывает его на снимки.
// Обе операции под одним mu, чтобы Release другого соединения не выселил сессию между ними.
func (s *GameService) Join(token string) (string, int, <-chan api.ServerResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.attach(token)
	if err != nil {
		return "", 0, nil, err
	}
	subID, updates := s.Hub.Subscribe(id)
	return id, subID, updates, nil
}

// Release отписывает соединение. Сессия без подписчиков удаляется.
func (s *GameService) Release(sessionID string, subID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Hub.Unsubscribe(sessionID, subID)
	if s.Hub.HasSubscriber(sessionID) {
		return
	}
	if _, ok := s.sessions[sessionID]; !ok {
		return
	}
	delete(s.sessions, sessionID)

	logger.Log.WithFields(logrus.Fields{
		"component": "service",
		"session":   sessionID,
	}).Info("Session evicted")
}

func (s *GameService) attach(token string) (string, error) {
	if _, ok := s.sessions[token]; ok && token != "" {
		return token, nil
	}

	id := utils.GenerateID("session")
	sess, err := NewSession(id, s.Config)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	s.sessions[id] = sess

	logger.Log.WithFields(logrus.Fields{
		"component": "service",
		"session":   id,
		"token":     token,
	}).Info("Session attached")

	return id, nil
}

// ProcessCommand выполняет команду в сессии и рассылает новый снимок.
// Ошибка команды не прерывает сессию: она попадает в лог снимка как ERROR.
func (s *GameService) ProcessCommand(sessionID string, cmd api.ClientCommand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSession, sessionID)
	}

	action := domain.ParseAction(cmd.Action)
	err := sess.Act(action, cmd.Payload)
	if err != nil {
		logger.Log.WithError(err).WithFields(logrus.Fields{
			"component": "service",
			"session":   sessionID,
			"action":    cmd.Action,
		}).Warn("Command rejected")
		sess.AddLog(err.Error(), "ERROR")
	}

	s.publishUpdate(sess)
	return err
}

// Snapshot возвращает текущий снимок сессии без выполнения команды.
func (s *GameService) Snapshot(sessionID string) (*api.ServerResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, sessionID)
	}
	return sess.BuildState(), nil
}

// publishUpdate рассылает снимок и очищает отправленные логи. Вызывается под mu.
func (s *GameService) publishUpdate(sess *Session) {
	state := sess.BuildState()
	s.Hub.SendTo(sess.ID, *state)
	sess.Logs = nil
}

// --- Отладочные отчеты ---

// SessionInfo - краткая сводка по сессии для /debug/sessions.
type SessionInfo struct {
	ID          string          `json:"id"`
	Level       string          `json:"level"`
	Turn        int             `json:"turn"`
	Player      domain.HexCoord `json:"player"`
	Algorithm   Algorithm       `json:"algorithm"`
	Visible     int             `json:"visible"`
	Explored    int             `json:"explored"`
	Awake       int             `json:"awake"`
	Alive       int             `json:"alive"`
	CheatVision bool            `json:"cheatVision"`
	Subscribers bool            `json:"hasSubscribers"`
}

// SessionInfos возвращает сводки по всем сессиям, отсортированные по ID.
func (s *GameService) SessionInfos() []SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	infos := make([]SessionInfo, 0, len(s.sessions))
	for id, sess := range s.sessions {
		alive := 0
		for _, e := range sess.Enemies {
			if !e.IsDead {
				alive++
			}
		}
		infos = append(infos, SessionInfo{
			ID:          id,
			Level:       sess.Level.Name,
			Turn:        sess.Turn,
			Player:      sess.Player.Pos,
			Algorithm:   sess.Vision.Algorithm(),
			Visible:     sess.Vision.Visible().Size(),
			Explored:    sess.Vision.Fog().Size(),
			Awake:       len(sess.ActiveEnemies()),
			Alive:       alive,
			CheatVision: sess.Vision.CheatEnabled(),
			Subscribers: s.Hub.HasSubscriber(id),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// VisibilityReport - видимое множество и туман войны сессии.
type VisibilityReport struct {
	SessionID string                                   `json:"sessionId"`
	Origin    domain.HexCoord                          `json:"origin"`
	Algorithm Algorithm                                `json:"algorithm"`
	Visible   []domain.HexCoord                        `json:"visible"`
	Fog       []domain.HexCoord                        `json:"fog"`
	Sectors   [systems.SectorCount]systems.SectorStats `json:"sectors"`

	// FogMap - ASCII-карта: видимое как в раскладке, запомненное ',', '@' игрок.
	FogMap string `json:"fogMap"`
}

func (s *GameService) VisibilityReport(sessionID string) (*VisibilityReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, sessionID)
	}

	vision := sess.Vision
	report := &VisibilityReport{
		SessionID: sessionID,
		Origin:    sess.Player.Pos,
		Algorithm: vision.Algorithm(),
		Visible:   domain.SortedCoords(vision.Visible()),
		Fog:       domain.SortedCoords(vision.Fog()),
		Sectors:   vision.LastStats().Sectors,
		FogMap:    dungeon.FormatASCII(sess.Map, sess.fogGlyph),
	}
	return report, nil
}

// fogGlyph рисует гекс так, как его помнит игрок.
func (s *Session) fogGlyph(h domain.HexCoord, kind domain.TileKind) rune {
	switch {
	case h == s.Player.Pos:
		return '@'
	case s.Vision.IsVisible(h):
		if e := s.EnemyAt(h); e != nil {
			return dungeon.GlyphForKind(e.Kind)
		}
		return dungeon.DefaultGlyph(h, kind)
	case s.Vision.HasBeenVisible(h):
		return ','
	}
	return 0
}

// CompareReport - расхождение точного shadowcast и flood fill из текущей позиции игрока.
type CompareReport struct {
	SessionID      string            `json:"sessionId"`
	Origin         domain.HexCoord   `json:"origin"`
	Shadowcast     int               `json:"shadowcast"`
	FloodFill      int               `json:"floodFill"`
	OnlyShadowcast []domain.HexCoord `json:"onlyShadowcast"`
	OnlyFloodFill  []domain.HexCoord `json:"onlyFloodFill"`
}

func (s *GameService) CompareReport(sessionID string) (*CompareReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, sessionID)
	}

	origin := sess.Player.Pos
	shadow, _ := ComputeVisibleSet(sess.Map, origin, AlgorithmShadowcast, s.Config.MaxRadius)
	flood, _ := ComputeVisibleSet(sess.Map, origin, AlgorithmFloodFill, s.Config.MaxRadius)

	return &CompareReport{
		SessionID:      sessionID,
		Origin:         origin,
		Shadowcast:     shadow.Size(),
		FloodFill:      flood.Size(),
		OnlyShadowcast: domain.DiffCoords(shadow, flood),
		OnlyFloodFill:  domain.DiffCoords(flood, shadow),
	}, nil
}
