package domain

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// CoordSet - множество координат. VisibilitySet и FogMemory имеют этот тип.
type CoordSet = mapset.Set[HexCoord]

func NewCoordSet(coords ...HexCoord) CoordSet {
	set := mapset.New[HexCoord]()
	for _, c := range coords {
		set.Put(c)
	}
	return set
}

// SortedCoords возвращает элементы множества в детерминированном порядке
// (по t, затем по s) - для DTO, логов и сравнения в тестах.
func SortedCoords(set CoordSet) []HexCoord {
	out := make([]HexCoord, 0, set.Size())
	set.Each(func(c HexCoord) {
		out = append(out, c)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].T != out[j].T {
			return out[i].T < out[j].T
		}
		return out[i].S < out[j].S
	})
	return out
}

// SameCoords сравнивает два множества поэлементно.
func SameCoords(a, b CoordSet) bool {
	if a.Size() != b.Size() {
		return false
	}
	same := true
	a.Each(func(c HexCoord) {
		if !b.Has(c) {
			same = false
		}
	})
	return same
}

// DiffCoords возвращает a \ b в детерминированном порядке.
func DiffCoords(a, b CoordSet) []HexCoord {
	diff := NewCoordSet()
	a.Each(func(c HexCoord) {
		if !b.Has(c) {
			diff.Put(c)
		}
	})
	return SortedCoords(diff)
}
