package handlers

import (
	"encoding/json"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
)

// SessionControl - операции уровня сессии, которые нужны админским командам.
// Session неявно реализует этот интерфейс.
type SessionControl interface {
	ToggleCheatVision() bool
	Restart() error
}

// Context передает хендлеру состояние мира.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Map      *domain.TileMap
	Entities []*domain.Entity // Игрок и все враги уровня
	Actor    *domain.Entity   // Тот, кто выполняет команду (Игрок или враг)
	Control  SessionControl
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сессии напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, COMBAT, ERROR)
}

// HandlerFunc - это контракт для любой команды (MOVE, WAIT, RESET, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
