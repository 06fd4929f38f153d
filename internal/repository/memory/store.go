// Package memory keeps the conversion ledger in process memory. It serves the same
// contracts as the postgresql repositories for installations without a database.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/kurochkinivan/data_sweepers/internal/domain"
)

type Store struct {
	mu          sync.RWMutex
	conversions map[string]domain.Conversion
	columns     map[string][]domain.ConversionColumn
}

func NewStore() *Store {
	return &Store{
		conversions: make(map[string]domain.Conversion),
		columns:     make(map[string][]domain.ConversionColumn),
	}
}

func (s *Store) Conversions(ctx context.Context) ([]*domain.Conversion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sorted(), nil
}

func (s *Store) ConversionsPage(ctx context.Context, limit, offset uint64) ([]*domain.Conversion, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, -1, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.sorted()
	total := len(all)

	start := min(offset, uint64(total))
	end := min(start+limit, uint64(total))

	return all[start:end], total, nil
}

func (s *Store) UpdateOrCreateConversion(ctx context.Context, conversion *domain.Conversion) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	journalFrom(ctx).conversion(s, conversion.Name)

	stored := *conversion
	if conversion.ProcessedAt != nil {
		at := *conversion.ProcessedAt
		stored.ProcessedAt = &at
	}
	s.conversions[conversion.Name] = stored

	return nil
}

func (s *Store) ResetProcessingConversions(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for name, c := range s.conversions {
		if c.Status == domain.StatusProcessing {
			journalFrom(ctx).conversion(s, name)
			c.Status = domain.StatusPending
			s.conversions[name] = c
		}
	}

	return nil
}

func (s *Store) ConversionColumns(ctx context.Context, name string) ([]*domain.ConversionColumn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.columns[name]
	columns := make([]*domain.ConversionColumn, len(stored))
	for i := range stored {
		c := stored[i]
		columns[i] = &c
	}

	return columns, nil
}

func (s *Store) SaveConversionColumns(ctx context.Context, name string, columns []*domain.ConversionColumn) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	journalFrom(ctx).columnSet(s, name)

	if len(columns) == 0 {
		delete(s.columns, name)
		return nil
	}

	stored := make([]domain.ConversionColumn, len(columns))
	for i, c := range columns {
		stored[i] = *c
		stored[i].ConversionName = name
	}
	s.columns[name] = stored

	return nil
}

// sorted returns copies ordered by name. Callers hold mu.
func (s *Store) sorted() []*domain.Conversion {
	conversions := make([]*domain.Conversion, 0, len(s.conversions))
	for _, c := range s.conversions {
		conversions = append(conversions, &c)
	}

	slices.SortFunc(conversions, func(a, b *domain.Conversion) int {
		return strings.Compare(a.Name, b.Name)
	})

	return conversions
}
