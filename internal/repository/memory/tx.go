package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/kurochkinivan/data_sweepers/internal/domain"
)

type ctxKey struct{}

// journal remembers the state of every key a transaction touched before its first write.
type journal struct {
	conversions map[string]*domain.Conversion
	columns     map[string][]domain.ConversionColumn
	touched     map[string]bool
}

func journalFrom(ctx context.Context) *journal {
	j, _ := ctx.Value(ctxKey{}).(*journal)
	return j
}

// conversion records the previous value of a conversion. Callers hold the store lock.
func (j *journal) conversion(s *Store, name string) {
	if j == nil {
		return
	}
	if _, ok := j.conversions[name]; ok {
		return
	}

	if c, ok := s.conversions[name]; ok {
		j.conversions[name] = &c
		return
	}
	j.conversions[name] = nil
}

func (j *journal) columnSet(s *Store, name string) {
	if j == nil || j.touched[name] {
		return
	}

	j.touched[name] = true
	if columns, ok := s.columns[name]; ok {
		j.columns[name] = columns
	}
}

func (j *journal) rollback(s *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, c := range j.conversions {
		if c == nil {
			delete(s.conversions, name)
			continue
		}
		s.conversions[name] = *c
	}

	for name := range j.touched {
		if columns, ok := j.columns[name]; ok {
			s.columns[name] = columns
			continue
		}
		delete(s.columns, name)
	}
}

// TxManager serialises transactions and undoes the writes of one that fails.
type TxManager struct {
	store *Store
	mu    sync.Mutex
}

func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

func (m *TxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if journalFrom(ctx) != nil {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	j := &journal{
		conversions: make(map[string]*domain.Conversion),
		columns:     make(map[string][]domain.ConversionColumn),
		touched:     make(map[string]bool),
	}

	if err := fn(context.WithValue(ctx, ctxKey{}, j)); err != nil {
		j.rollback(m.store)
		return fmt.Errorf("rolled back due to err: %w", err)
	}

	return nil
}
