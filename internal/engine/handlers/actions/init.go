package actions

import "github.com/malcolmsharpe/hex-dance-dungeon/internal/engine/handlers"

func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Добро пожаловать в Hex Dance Dungeon.",
		MsgType: "INFO",
	}, nil
}
