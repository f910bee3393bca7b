package api

import (
	"encoding/json"
	"fmt"
	"time"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" того, что видит и помнит игрок сессии.
// Отправляется после каждой команды всем подключениям этой сессии.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE" или "ERROR".
	Type string `json:"type"`

	// SessionID идентификатор сессии. Клиент передает его в INIT, чтобы переподключиться.
	SessionID string `json:"sessionId,omitempty"`

	// Level имя загруженного уровня.
	Level string `json:"level,omitempty"`

	// Turn количество завершенных ходов с начала (или рестарта) сессии.
	Turn int `json:"turn"`

	// Player позиция игрока.
	Player *PlayerView `json:"player,omitempty"`

	// CheatVision true, если включен режим "видно всё".
	CheatVision bool `json:"cheatVision"`

	// Map срез всех тайлов, которые нужно нарисовать: исследованные
	// или раскрытые читом.
	Map []TileView `json:"map,omitempty"`

	// Entities срез видимых живых существ.
	Entities []EntityView `json:"entities,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлого снимка.
	Logs []LogEntry `json:"logs,omitempty"`
}

// PlayerView - позиция игрока в гексовых координатах.
type PlayerView struct {
	S int `json:"s"`
	T int `json:"t"`
}

// TileView это DTO для одного гекса карты.
type TileView struct {
	S int `json:"s"`
	T int `json:"t"`

	// Kind тип тайла: "floor", "wall", "door".
	Kind string `json:"kind"`

	// IsVisible true, если гекс виден в этом ходу. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsExplored true, если гекс когда-либо был увиден. Используется для "тумана войны".
	// Если IsVisible=false, а IsExplored=true, рендерится тускло.
	IsExplored bool `json:"isExplored"`
}

// EntityView это DTO для существа.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // PLAYER, ENEMY
	Kind string `json:"kind"`

	Pos struct {
		S int `json:"s"`
		T int `json:"t"`
	} `json:"pos"`

	// IsAwake true, если существо уже замечено и действует.
	IsAwake bool `json:"isAwake"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID сессии. Обязателен только для первого сообщения "INIT";
	// пустой или неизвестный токен создает новую сессию.
	Token string `json:"token,omitempty"`

	// Action название действия: INIT, MOVE, WAIT, CHEAT_VIS, RESET.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// DirectionPayload используется для MOVE: индекс одного из шести направлений.
type DirectionPayload struct {
	Dir int `json:"dir"` // 0..5, см. domain.HexDirections
}

// NewErrorResponse - ответ на сообщение, которое не дошло до сессии
// (битый JSON, неудачный INIT). Текст ошибки кладется в лог.
func NewErrorResponse(sessionID, text string) ServerResponse {
	now := time.Now()
	return ServerResponse{
		Type:      "ERROR",
		SessionID: sessionID,
		Logs: []LogEntry{{
			ID:        fmt.Sprintf("err_%d", now.UnixNano()),
			Text:      text,
			Type:      "ERROR",
			Timestamp: now.UnixMilli(),
		}},
	}
}
