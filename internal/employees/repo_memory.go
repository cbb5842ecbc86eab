package employees

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu        sync.RWMutex
	employees []Employee
	err       error
}

func NewMemoryRepo(seed ...Employee) *MemoryRepo {
	return &MemoryRepo{employees: append([]Employee(nil), seed...)}
}

// SetError makes subsequent ListAll calls fail with err. Pass nil to clear.
func (r *MemoryRepo) SetError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *MemoryRepo) ListAll(ctx context.Context) ([]Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}
