package world

import (
	"context"
	"sync"
)

// MemoryRepo holds the validated world snapshot shared between the engine
// and host tooling. Writes happen only at load time; reads are concurrent.
type MemoryRepo struct {
	mu sync.RWMutex
	w  World
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Get(ctx context.Context) (World, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.w, nil
}

func (r *MemoryRepo) Set(ctx context.Context, w World) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.w = w
	return nil
}
