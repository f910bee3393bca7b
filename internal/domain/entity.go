package domain

// Типы сущностей
const (
	EntityTypePlayer = "PLAYER"
	EntityTypeEnemy  = "ENEMY"
)

// Entity - существо на гексовой карте (враг).
// Игрок хранится в сессии отдельно, у него нет флагов активации.
type Entity struct {
	ID   string   `json:"id"`
	Type string   `json:"type"`
	Kind string   `json:"kind"` // bat, slime, ghost, skeleton...
	Pos  HexCoord `json:"pos"`

	IsDead bool `json:"isDead"`

	// HasBeenVisible выставляется, когда клетка существа впервые попала в VisibilitySet.
	// До этого существо не действует.
	HasBeenVisible bool `json:"hasBeenVisible"`
}

// IsInactive - мертвые и еще не замеченные существа не ходят.
func (e *Entity) IsInactive() bool {
	return e.IsDead || !e.HasBeenVisible
}
