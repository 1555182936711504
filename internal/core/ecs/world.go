package ecs

// World owns an entity pool, the component stores tracked for cleanup, and a
// deferred destruction queue. Handles marked for destruction stay valid until
// FlushDestroyQueue runs at the end of the tick, so systems iterating a
// store never see it shrink underneath them.
type World struct {
	pool         *EntityPool
	stores       []Removable
	destroyQueue []EntityID
	queued       map[EntityID]bool
}

func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		destroyQueue: make([]EntityID, 0, 32),
		queued:       make(map[EntityID]bool, 32),
	}
}

// Track makes FlushDestroyQueue clear destroyed entities from store.
func (w *World) Track(store Removable) {
	w.stores = append(w.stores, store)
}

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// MarkForDestruction queues an entity for end-of-tick cleanup. Marking the
// same entity twice, or a dead one, is ignored.
func (w *World) MarkForDestruction(id EntityID) {
	if !w.pool.Alive(id) || w.queued[id] {
		return
	}
	w.queued[id] = true
	w.destroyQueue = append(w.destroyQueue, id)
}

// Pending reports whether id is queued for destruction.
func (w *World) Pending(id EntityID) bool {
	return w.queued[id]
}

// FlushDestroyQueue destroys all queued entities and clears their
// components. Returns how many were destroyed.
func (w *World) FlushDestroyQueue() int {
	n := len(w.destroyQueue)
	for _, id := range w.destroyQueue {
		for _, st := range w.stores {
			st.Remove(id)
		}
		w.pool.Destroy(id)
		delete(w.queued, id)
	}
	w.destroyQueue = w.destroyQueue[:0]
	return n
}
