package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/data_sweepers/internal/domain"
)

const TableConversionColumns = "conversion_columns"

type ColumnsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewColumnsRepository(pool *pgxpool.Pool) *ColumnsRepository {
	return &ColumnsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ColumnsRepository) ConversionColumns(ctx context.Context, name string) ([]*domain.ConversionColumn, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"conversion_name",
			"position",
			"name",
			"kind",
			"mean",
		).
		From(TableConversionColumns).
		Where(sq.Eq{"conversion_name": name}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(TableConversionColumns, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(TableConversionColumns, err)
	}

	columns, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.ConversionColumn])
	if err != nil {
		return nil, collectRowsError(TableConversionColumns, err)
	}

	return columns, nil
}

// SaveConversionColumns replaces the stored columns of the named conversion.
func (r *ColumnsRepository) SaveConversionColumns(
	ctx context.Context,
	name string,
	columns []*domain.ConversionColumn,
) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Delete(TableConversionColumns).
		Where(sq.Eq{"conversion_name": name}).
		ToSql()
	if err != nil {
		return createQueryError(TableConversionColumns, err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(TableConversionColumns, err)
	}

	if len(columns) == 0 {
		return nil
	}

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableConversionColumns}, []string{
		"conversion_name",
		"position",
		"name",
		"kind",
		"mean",
	}, pgx.CopyFromSlice(len(columns), func(i int) ([]any, error) {
		return []any{
			name,
			columns[i].Position,
			columns[i].Name,
			columns[i].Kind,
			columns[i].Mean,
		}, nil
	}))
	if err != nil {
		return copyRowsError(TableConversionColumns, err)
	}

	if copied != int64(len(columns)) {
		return fmt.Errorf("copied %d rows into %s, expected %d", copied, TableConversionColumns, len(columns))
	}

	return nil
}
