package engine

import (
	"container/heap"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/domain"
)

// TurnKey - приоритет хода врага. Раньше ходит ближний к игроку
// (по квадрату евклидова расстояния), при равенстве - меньший t, потом меньший s.
type TurnKey struct {
	Dist2 int
	T     int
	S     int
}

func (k TurnKey) Less(o TurnKey) bool {
	if k.Dist2 != o.Dist2 {
		return k.Dist2 < o.Dist2
	}
	if k.T != o.T {
		return k.T < o.T
	}
	return k.S < o.S
}

// EnemyTurnKey строит приоритет врага на позиции pos относительно игрока.
func EnemyTurnKey(pos, player domain.HexCoord) TurnKey {
	return TurnKey{Dist2: domain.DistanceSquared(pos, player), T: pos.T, S: pos.S}
}

// TurnItem обертка для элемента очереди приоритетов
type TurnItem struct {
	Value    *domain.Entity // Сама сущность
	Priority TurnKey        // Чем меньше, тем раньше ход.
	Index    int            // Индекс в куче
}

// TurnQueue реализует heap.Interface и хранит TurnItems
type TurnQueue []*TurnItem

func (pq TurnQueue) Len() int { return len(pq) }

func (pq TurnQueue) Less(i, j int) bool {
	// Мы хотим MinHeap, поэтому возвращаем true, если i < j
	return pq[i].Priority.Less(pq[j].Priority)
}

func (pq TurnQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *TurnQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*TurnItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *TurnQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.Index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}

// OrderEnemies возвращает живых проснувшихся врагов в порядке хода.
// Приоритет фиксируется в начале фазы врагов по текущей позиции игрока.
func OrderEnemies(enemies []*domain.Entity, player domain.HexCoord) []*domain.Entity {
	pq := make(TurnQueue, 0, len(enemies))
	heap.Init(&pq)

	for _, e := range enemies {
		if e.IsInactive() {
			continue
		}
		heap.Push(&pq, &TurnItem{Value: e, Priority: EnemyTurnKey(e.Pos, player)})
	}

	ordered := make([]*domain.Entity, 0, pq.Len())
	for pq.Len() > 0 {
		ordered = append(ordered, heap.Pop(&pq).(*TurnItem).Value)
	}
	return ordered
}
