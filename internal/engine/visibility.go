package engine

import (
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/systems"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/logger"
	"github.com/sirupsen/logrus"
)

// MapView - то, что расчету видимости нужно от карты.
// *domain.TileMap реализует его.
type MapView interface {
	systems.OpacityView
	Exists(h domain.HexCoord) bool
	Extent(origin domain.HexCoord) int
}

// ComputeVisibleSet считает видимое множество одним алгоритмом.
// Отмечаются только существующие тайлы, origin добавляется всегда.
// maxRadius <= 0 означает протяженность карты от origin.
func ComputeVisibleSet(view MapView, origin domain.HexCoord, algorithm Algorithm, maxRadius int) (domain.CoordSet, systems.SweepStats) {
	if maxRadius <= 0 {
		maxRadius = view.Extent(origin)
	}

	visible := domain.NewCoordSet()
	mark := func(h domain.HexCoord) {
		if view.Exists(h) {
			visible.Put(h)
		}
	}

	var stats systems.SweepStats
	switch algorithm {
	case AlgorithmFloodFill:
		systems.ComputeFloodFill(view, origin, maxRadius, mark)
	default:
		stats = systems.ComputeShadowcast(view, origin, maxRadius, mark)
	}

	visible.Put(origin)
	return visible, stats
}

// Vision - оркестратор видимости одной сессии: текущее видимое множество,
// туман войны (все, что когда-либо было видно) и чит "видно всё".
type Vision struct {
	algorithm Algorithm
	maxRadius int

	visible domain.CoordSet
	fog     domain.CoordSet
	stats   systems.SweepStats

	cheat bool
}

func NewVision(algorithm Algorithm, maxRadius int) *Vision {
	return &Vision{
		algorithm: algorithm,
		maxRadius: maxRadius,
		visible:   domain.NewCoordSet(),
		fog:       domain.NewCoordSet(),
	}
}

// RecomputeVisibility заново считает видимое множество от origin.
// Предыдущий результат отбрасывается целиком. Возвращенное множество принадлежит Vision.
func (v *Vision) RecomputeVisibility(view MapView, origin domain.HexCoord) domain.CoordSet {
	v.visible, v.stats = ComputeVisibleSet(view, origin, v.algorithm, v.maxRadius)

	logger.Log.WithFields(logrus.Fields{
		"component": "vision",
		"origin":    origin,
		"algorithm": v.algorithm,
		"visible":   v.visible.Size(),
		"max_rings": v.stats.MaxRings(),
	}).Debug("Visibility recomputed.")

	return v.visible
}

// FoldIntoFog добавляет множество в туман войны. Туман только растет.
func (v *Vision) FoldIntoFog(set domain.CoordSet) {
	set.Each(func(h domain.HexCoord) {
		v.fog.Put(h)
	})
}

// IsVisible - виден ли гекс в этом ходу.
func (v *Vision) IsVisible(h domain.HexCoord) bool {
	return v.visible.Has(h)
}

// HasBeenVisible - был ли гекс виден когда-либо с начала сессии.
func (v *Vision) HasBeenVisible(h domain.HexCoord) bool {
	return v.fog.Has(h)
}

// ShouldRender - рисовать ли гекс. Чит показывает всё.
func (v *Vision) ShouldRender(h domain.HexCoord) bool {
	return v.cheat || v.fog.Has(h)
}

func (v *Vision) CheatEnabled() bool {
	return v.cheat
}

func (v *Vision) SetCheat(on bool) {
	v.cheat = on
}

// ResetFog забывает всё увиденное (рестарт сессии).
func (v *Vision) ResetFog() {
	v.visible = domain.NewCoordSet()
	v.fog = domain.NewCoordSet()
	v.stats = systems.SweepStats{}
}

// Visible и Fog отдают внутренние множества только на чтение.
func (v *Vision) Visible() domain.CoordSet { return v.visible }
func (v *Vision) Fog() domain.CoordSet { return v.fog }

// LastStats - глубина обхода секторов при последнем пересчете (нули для flood fill).
func (v *Vision) LastStats() systems.SweepStats {
	return v.stats
}

func (v *Vision) Algorithm() Algorithm {
	return v.algorithm
}
