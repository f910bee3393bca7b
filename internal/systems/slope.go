package systems

import "fmt"

// Slope - точный рациональный наклон Num/Den, Den > 0.
// Сравнивается перекрестным умножением, во float не переводится никогда:
// на большом радиусе потеря точности ломает ничьи на границах интервалов.
type Slope struct {
	Num int
	Den int
}

// Границы канонического сектора в локальной системе координат.
var (
	wedgeLow  = Slope{Num: -1, Den: 1}
	wedgeHigh = Slope{Num: 1, Den: 1}
)

// NewSlope нормализует знак так, чтобы знаменатель был положительным.
func NewSlope(num, den int) Slope {
	if den < 0 {
		return Slope{Num: -num, Den: -den}
	}
	return Slope{Num: num, Den: den}
}

// Less: a/b < c/d  <=>  a*d < c*b (при b, d > 0).
func (a Slope) Less(b Slope) bool {
	return a.Num*b.Den < b.Num*a.Den
}

// Equal сравнивает значения, а не представления: 1/2 == 2/4.
func (a Slope) Equal(b Slope) bool {
	return a.Num*b.Den == b.Num*a.Den
}

func (a Slope) LessOrEqual(b Slope) bool {
	return !b.Less(a)
}

func (a Slope) String() string {
	return fmt.Sprintf("%d/%d", a.Num, a.Den)
}

func minSlope(a, b Slope) Slope {
	if b.Less(a) {
		return b
	}
	return a
}

func maxSlope(a, b Slope) Slope {
	if a.Less(b) {
		return b
	}
	return a
}

// clampToWedge обрезает наклон до [-1/1, +1/1].
func clampToWedge(s Slope) Slope {
	return minSlope(maxSlope(s, wedgeLow), wedgeHigh)
}
