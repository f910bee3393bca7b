package systems

import "github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"

// OpacityView - единственное, что алгоритмам видимости нужно знать о карте.
// Должен быть тотальным: для любой координаты, включая отсутствующие, есть ответ.
type OpacityView interface {
	Opaque(h domain.HexCoord) bool
}

// OpacityFunc позволяет передать обычную функцию как OpacityView.
type OpacityFunc func(h domain.HexCoord) bool

func (f OpacityFunc) Opaque(h domain.HexCoord) bool {
	return f(h)
}

// MarkFunc вызывается для каждой координаты, признанной видимой.
// Может вызываться повторно для одной и той же координаты.
type MarkFunc func(h domain.HexCoord)
