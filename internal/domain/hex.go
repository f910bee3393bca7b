package domain

import "fmt"

// HexCoord - координата гекса в кубической системе (s, t, p).
// Хранятся только s и t, третья координата выводится: p = -s - t.
type HexCoord struct {
	S int `json:"s"`
	T int `json:"t"`
}

// DirectionCount - количество соседей у гекса.
const DirectionCount = 6

// HexDirections - единичные векторы к шести соседям.
// Каждый следующий получается из предыдущего поворотом Rotate60.
var HexDirections = [DirectionCount]HexCoord{
	{S: 1, T: 0},
	{S: 1, T: -1},
	{S: 0, T: -1},
	{S: -1, T: 0},
	{S: -1, T: 1},
	{S: 0, T: 1},
}

// Hex - короткий конструктор координаты.
func Hex(s, t int) HexCoord {
	return HexCoord{S: s, T: t}
}

// P возвращает неявную третью координату.
func (h HexCoord) P() int {
	return -h.S - h.T
}

func (h HexCoord) Add(o HexCoord) HexCoord {
	return HexCoord{S: h.S + o.S, T: h.T + o.T}
}

func (h HexCoord) Sub(o HexCoord) HexCoord {
	return HexCoord{S: h.S - o.S, T: h.T - o.T}
}

// Neighbor возвращает соседа в направлении dir (0..5, берется по модулю).
func (h HexCoord) Neighbor(dir int) HexCoord {
	return h.Add(HexDirections[PositiveMod(dir, DirectionCount)])
}

// Neighbors возвращает всех шестерых соседей.
func (h HexCoord) Neighbors() [DirectionCount]HexCoord {
	var result [DirectionCount]HexCoord
	for i, d := range HexDirections {
		result[i] = h.Add(d)
	}
	return result
}

// Rotate60 поворачивает вектор на 60 градусов по часовой стрелке вокруг нуля:
// (s, t, p) -> (-p, -s, -t).
func (h HexCoord) Rotate60() HexCoord {
	return HexCoord{S: -h.P(), T: -h.S}
}

// Rotate поворачивает вектор k раз на 60 градусов. Отрицательные k вращают в обратную сторону.
func (h HexCoord) Rotate(k int) HexCoord {
	k = PositiveMod(k, DirectionCount)
	for i := 0; i < k; i++ {
		h = h.Rotate60()
	}
	return h
}

// RotateAround поворачивает точку на k*60 градусов вокруг center.
func (h HexCoord) RotateAround(center HexCoord, k int) HexCoord {
	return center.Add(h.Sub(center).Rotate(k))
}

// Distance - гексовое расстояние: (|ds| + |dt| + |dp|) / 2.
func Distance(a, b HexCoord) int {
	d := a.Sub(b)
	return (abs(d.S) + abs(d.T) + abs(d.P())) / 2
}

// DistanceSquared - квадрат евклидова расстояния между центрами при шаге 1:
// ds² + dt² + ds·dt. Только для сравнений и разрешения ничьих.
func DistanceSquared(a, b HexCoord) int {
	ds := b.S - a.S
	dt := b.T - a.T
	return ds*ds + dt*dt + ds*dt
}

// DistanceTo - то же, что Distance, в форме метода.
func (h HexCoord) DistanceTo(other HexCoord) int {
	return Distance(h, other)
}

// IsAdjacent возвращает true, если other - один из шести соседей.
func (h HexCoord) IsAdjacent(other HexCoord) bool {
	return h.DistanceTo(other) == 1
}

func (h HexCoord) String() string {
	return fmt.Sprintf("(%d,%d)", h.S, h.T)
}

// PositiveMod - остаток, всегда лежащий в [0, m).
func PositiveMod(x, m int) int {
	return (x%m + m) % m
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DirectionTo возвращает индекс направления на соседа other. ok=false, если other не сосед.
func (h HexCoord) DirectionTo(other HexCoord) (dir int, ok bool) {
	d := other.Sub(h)
	for i, v := range HexDirections {
		if v == d {
			return i, true
		}
	}
	return 0, false
}
