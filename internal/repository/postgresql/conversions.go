package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/data_sweepers/internal/domain"
)

const TableConversions = "conversions"

type ConversionsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewConversionsRepository(pool *pgxpool.Pool) *ConversionsRepository {
	return &ConversionsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var conversionColumns = []string{
	"name",
	"status",
	"output_name",
	"row_count",
	"error_message",
	"processed_at",
}

func (r *ConversionsRepository) Conversions(ctx context.Context) ([]*domain.Conversion, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(conversionColumns...).
		From(TableConversions).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(TableConversions, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(TableConversions, err)
	}

	conversions, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Conversion])
	if err != nil {
		return nil, collectRowsError(TableConversions, err)
	}

	return conversions, nil
}

func (r *ConversionsRepository) ConversionsPage(
	ctx context.Context,
	limit, offset uint64,
) ([]*domain.Conversion, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableConversions).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(TableConversions, err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(TableConversions, err)
	}

	sql, args, err = r.qb.
		Select(conversionColumns...).
		From(TableConversions).
		OrderBy("name ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(TableConversions, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(TableConversions, err)
	}

	conversions, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Conversion])
	if err != nil {
		return nil, -1, collectRowsError(TableConversions, err)
	}

	return conversions, total, nil
}

func (r *ConversionsRepository) UpdateOrCreateConversion(ctx context.Context, conversion *domain.Conversion) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableConversions).
		Columns(conversionColumns...).
		Values(
			conversion.Name,
			conversion.Status,
			conversion.OutputName,
			conversion.RowCount,
			conversion.ErrorMessage,
			conversion.ProcessedAt,
		).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			status = EXCLUDED.status,
			output_name = EXCLUDED.output_name,
			row_count = EXCLUDED.row_count,
			error_message = EXCLUDED.error_message,
			processed_at = EXCLUDED.processed_at
		`).
		ToSql()
	if err != nil {
		return createQueryError(TableConversions, err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(TableConversions, err)
	}

	return nil
}

// ResetProcessingConversions returns conversions interrupted by a restart to pending.
func (r *ConversionsRepository) ResetProcessingConversions(ctx context.Context) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableConversions).
		Set("status", domain.StatusPending).
		Where(sq.Eq{"status": domain.StatusProcessing}).
		ToSql()
	if err != nil {
		return createQueryError(TableConversions, err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(TableConversions, err)
	}

	return nil
}
