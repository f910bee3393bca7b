package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/engine"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/api"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и GameService
type Client struct {
	Game      *engine.GameService
	Conn      *websocket.Conn
	Send      chan api.ServerResponse
	SessionID string

	// done закрывается writePump при выходе, чтобы пересылка из Hub не зависла.
	done chan struct{}
}

func NewClient(game *engine.GameService, conn *websocket.Conn) *Client {
	return &Client{
		Game: game,
		Conn: conn,
		Send: make(chan api.ServerResponse, 256),
		done: make(chan struct{}),
	}
}

// readPump читает команды от клиента.
// Если handshake не удался, соединение закрывает writePump, успев отправить ошибку.
func (c *Client) readPump() {
	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. HANDSHAKE: первое сообщение обязано быть INIT
	var initCmd api.ClientCommand
	if err := c.Conn.ReadJSON(&initCmd); err != nil {
		logger.Log.WithError(err).Warn("Handshake failed")
		c.Send <- api.NewErrorResponse("", "handshake failed: "+err.Error())
		close(c.Send)
		return
	}
	if domain.ParseAction(initCmd.Action) != domain.ActionInit {
		logger.Log.WithField("action", initCmd.Action).Warn("Handshake without INIT")
		c.Send <- api.NewErrorResponse("", "first message must be INIT")
		close(c.Send)
		return
	}

	// 2. ПОИСК ИЛИ СОЗДАНИЕ СЕССИИ + ПОДПИСКА НА ОБНОВЛЕНИЯ
	sessionID, subID, updates, err := c.Game.Join(initCmd.Token)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to attach session")
		c.Send <- api.NewErrorResponse("", err.Error())
		close(c.Send)
		return
	}
	c.SessionID = sessionID

	clientLogger := logger.For("ws_client").WithFields(logrus.Fields{
		"session": sessionID,
		"remote":  c.Conn.RemoteAddr().String(),
	})
	clientLogger.Info("Client attached")

	// 3. Последнее отключившееся соединение уносит сессию с собой
	defer func() {
		c.Game.Release(sessionID, subID)
		if err := c.Conn.Close(); err != nil {
			clientLogger.WithError(err).Debug("failed to close websocket connection")
		}
		clientLogger.Info("Client disconnected")
	}()

	// Пересылка из Hub в writePump. Send закрывается, когда Hub закроет канал подписки.
	go func() {
		defer close(c.Send)
		for msg := range updates {
			select {
			case c.Send <- msg:
			case <-c.done:
			}
		}
	}()

	// INIT - триггер первой отрисовки
	c.Game.ProcessCommand(sessionID, api.ClientCommand{Action: initCmd.Action})

	// 4. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				clientLogger.WithError(err).Error("WS Error")
			}
			break
		}

		var cmd api.ClientCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			clientLogger.WithError(err).Warn("Malformed command")
			c.enqueue(api.NewErrorResponse(sessionID, "malformed command: "+err.Error()))
			continue
		}

		// Ошибки команд уже записаны в лог сессии и разосланы снимком
		_ = c.Game.ProcessCommand(sessionID, cmd)
	}
}

// enqueue отправляет ответ только этому соединению, не блокируясь на медленном клиенте.
func (c *Client) enqueue(msg api.ServerResponse) {
	select {
	case c.Send <- msg:
	case <-c.done:
	default:
		logger.Log.WithField("session", c.SessionID).Warn("Client send buffer full, dropping message")
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(c.done)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
