package domain

// TileMap - разреженная гексовая карта: координата -> тип тайла.
// Принадлежит игровому состоянию; движок видимости её только читает.
type TileMap struct {
	tiles map[HexCoord]TileKind
}

func NewTileMap() *TileMap {
	return &TileMap{tiles: make(map[HexCoord]TileKind)}
}

// Set записывает тайл. TileNone удаляет запись.
func (m *TileMap) Set(c HexCoord, kind TileKind) {
	if kind == TileNone {
		delete(m.tiles, c)
		return
	}
	m.tiles[c] = kind
}

// Kind возвращает тип тайла; для отсутствующих - TileNone.
func (m *TileMap) Kind(c HexCoord) TileKind {
	return m.tiles[c]
}

// Exists отличает "нет тайла" от пола. Нужен рендеру и хуку отметки видимости.
func (m *TileMap) Exists(c HexCoord) bool {
	_, ok := m.tiles[c]
	return ok
}

// Opaque тотальна: отсутствующий тайл непрозрачен.
func (m *TileMap) Opaque(c HexCoord) bool {
	return m.Kind(c).IsOpaque()
}

// Len - количество записанных тайлов.
func (m *TileMap) Len() int {
	return len(m.tiles)
}

// Each обходит все записанные тайлы (порядок не определен).
func (m *TileMap) Each(fn func(c HexCoord, kind TileKind)) {
	for c, k := range m.tiles {
		fn(c, k)
	}
}

// Extent - максимальное гексовое расстояние от origin до записанного тайла.
// Дальше этого радиуса видеть нечего.
func (m *TileMap) Extent(origin HexCoord) int {
	extent := 0
	for c := range m.tiles {
		if d := Distance(origin, c); d > extent {
			extent = d
		}
	}
	return extent
}

// Clone делает независимую копию карты (для рестарта сессии).
func (m *TileMap) Clone() *TileMap {
	out := &TileMap{tiles: make(map[HexCoord]TileKind, len(m.tiles))}
	for c, k := range m.tiles {
		out.tiles[c] = k
	}
	return out
}
