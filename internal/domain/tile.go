package domain

// TileKind - тип тайла гексовой карты.
type TileKind uint8

const (
	// TileNone - "тайла нет". Отсутствующий ключ в TileMap ведет себя так же.
	TileNone TileKind = iota
	TileFloor
	TileWall
	// TileDoor проходима (открывается при попытке войти), но непрозрачна.
	TileDoor
)

var tileKindToString = map[TileKind]string{
	TileNone:  "none",
	TileFloor: "floor",
	TileWall:  "wall",
	TileDoor:  "door",
}

// String реализует интерфейс Stringer
func (k TileKind) String() string {
	if val, ok := tileKindToString[k]; ok {
		return val
	}
	return "unknown"
}

// MarshalText нужен, чтобы в JSON тип уходил строкой ("wall"), а не числом.
func (k TileKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsOpaque: непрозрачно всё, что не пол. Двери и пустота тоже.
func (k TileKind) IsOpaque() bool {
	return k != TileFloor
}
