package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jobdesk/jobdesk/internal/data/pgxutil"
	"github.com/jobdesk/jobdesk/internal/domain/model"
	apperrors "github.com/jobdesk/jobdesk/internal/errors"
)

// CategoryRepo reads job category reference data. Categories are never
// mutated by the back-office.
type CategoryRepo struct {
	DB *sql.DB
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{DB: db}
}

// List returns all categories ordered by name, for filter dropdowns.
func (r *CategoryRepo) List(ctx context.Context) ([]*model.JobCategory, error) {
	const query = `SELECT id, name FROM job_categories ORDER BY name`

	var categories []*model.JobCategory
	err := pgxutil.WithPgxConn(ctx, r.DB, func(pgxConn *pgx.Conn) error {
		rows, err := pgxConn.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		categories, err = pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[model.JobCategory])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", apperrors.MapDBError(err))
	}

	return categories, nil
}
