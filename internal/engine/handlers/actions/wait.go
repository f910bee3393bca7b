package actions

import (
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/engine/handlers"
)

func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	// Враги ждут молча, иначе лог забивается
	return handlers.EmptyResult(), nil
}
