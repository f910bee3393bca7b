package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Algorithm - алгоритм расчета видимости.
type Algorithm string

const (
	// AlgorithmShadowcast - точный, по умолчанию.
	AlgorithmShadowcast Algorithm = "shadowcast"
	// AlgorithmFloodFill - дешевое приближение, выбирается только явно.
	AlgorithmFloodFill Algorithm = "flood"
)

// EnemyAI - кто управляет проснувшимися врагами.
type EnemyAI string

const (
	EnemyAIIdle  EnemyAI = "idle"
	EnemyAIChase EnemyAI = "chase"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown visibility algorithm")
	ErrUnknownEnemyAI   = errors.New("unknown enemy controller")
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - зерно генератора для уровня "random".
	Seed int64

	Algorithm Algorithm

	// MaxRadius ограничивает обзор. 0 - по протяженности карты от позиции игрока.
	MaxRadius int

	// Level - имя уровня, на котором создаются новые сессии.
	Level string

	EnemyAI EnemyAI
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:      time.Now().UnixNano(),
		Algorithm: AlgorithmShadowcast,
		MaxRadius: 0,
		Level:     "crossroads",
		EnemyAI:   EnemyAIIdle,
	}
}

// ParseAlgorithm разбирает имя алгоритма из флага (без учета регистра).
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shadowcast", "shadow":
		return AlgorithmShadowcast, nil
	case "flood", "floodfill":
		return AlgorithmFloodFill, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// ParseEnemyAI разбирает имя контроллера врагов.
func ParseEnemyAI(s string) (EnemyAI, error) {
	switch EnemyAI(strings.ToLower(strings.TrimSpace(s))) {
	case EnemyAIIdle:
		return EnemyAIIdle, nil
	case EnemyAIChase:
		return EnemyAIChase, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEnemyAI, s)
}
