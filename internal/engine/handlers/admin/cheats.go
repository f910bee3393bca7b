package admin

import (
	"errors"
	"fmt"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/engine/handlers"
)

var errNoControl = errors.New("session control is not available")

// HandleCheatVision включает/выключает режим "видно всё". Ход не тратится.
func HandleCheatVision(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Control == nil {
		return handlers.Result{}, errNoControl
	}

	if ctx.Control.ToggleCheatVision() {
		return handlers.Result{Msg: "⚡ Cheat vision enabled", MsgType: "INFO"}, nil
	}
	return handlers.Result{Msg: "Cheat vision disabled", MsgType: "INFO"}, nil
}

// HandleReset перезапускает уровень: карта, враги и туман войны возвращаются к началу.
func HandleReset(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Control == nil {
		return handlers.Result{}, errNoControl
	}

	if err := ctx.Control.Restart(); err != nil {
		return handlers.Result{}, fmt.Errorf("restart failed: %w", err)
	}
	return handlers.Result{Msg: "Уровень перезапущен.", MsgType: "INFO"}, nil
}
