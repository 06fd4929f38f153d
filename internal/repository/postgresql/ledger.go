package postgresql

import "github.com/jackc/pgx/v5/pgxpool"

// Ledger bundles the repositories the conversion ledger is made of.
type Ledger struct {
	*ConversionsRepository
	*ColumnsRepository
}

func NewLedger(pool *pgxpool.Pool) *Ledger {
	return &Ledger{
		ConversionsRepository: NewConversionsRepository(pool),
		ColumnsRepository:     NewColumnsRepository(pool),
	}
}
