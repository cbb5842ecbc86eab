package employees

import (
	"context"
	"database/sql"
	"fmt"

	"status-backend/internal/shared/storage/db"
)

const listAllQuery = `SELECT id, name, domain FROM employees`

// PGRepo reads employees from Postgres using one connection per call.
type PGRepo struct {
	Connector db.Connector
}

// ListAll returns every row in database order. The connection is closed
// before returning on every path.
func (r *PGRepo) ListAll(ctx context.Context) ([]Employee, error) {
	conn, err := r.Connector.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, listAllQuery)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	out := make([]Employee, 0)
	for rows.Next() {
		var e Employee
		var name, domain sql.NullString
		if err := rows.Scan(&e.ID, &name, &domain); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		if name.Valid {
			e.Name = name.String
		}
		if domain.Valid {
			e.Domain = domain.String
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read employees: %w", err)
	}
	return out, nil
}
