package postgresql

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tallerhq/ops-backend-go/internal/domain/punch"
	"github.com/tallerhq/ops-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// Create implements punch.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (
			employee_id, kind, punched_at, recorded_by, note, client_token
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		p.EmployeeID,
		p.Kind,
		p.PunchedAt,
		p.RecordedBy,
		p.Note,
		p.ClientToken,
	).Scan(&p.ID, &p.CreatedAt)

	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return p, nil
}

// GetByID implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByID(ctx context.Context, id string) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.kind, p.punched_at, p.recorded_by, p.note, p.client_token, p.created_at,
			   e.full_name AS employee_name
		FROM punches p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var pu punch.Punch
	err := q.QueryRow(ctx, query, id).Scan(
		&pu.ID, &pu.EmployeeID, &pu.Kind, &pu.PunchedAt, &pu.RecordedBy, &pu.Note, &pu.ClientToken, &pu.CreatedAt,
		&pu.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return punch.Punch{}, punch.ErrPunchNotFound
		}
		return punch.Punch{}, fmt.Errorf("failed to get punch by ID: %w", err)
	}

	return pu, nil
}

// List implements punch.PunchRepository. On schema drift the filtered query
// falls back to a baseline fetch and the filter, sort and page are applied in
// process, so callers always see a filtered result.
func (r *punchRepositoryImpl) List(ctx context.Context, filter punch.ListPunchFilter) ([]punch.Punch, int64, error) {
	q := GetQuerier(ctx, r.db)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}

	punches, total, err := r.listFiltered(ctx, q, filter, limit, page)
	if err == nil {
		return punches, total, nil
	}
	if !isSchemaDrift(err) {
		return nil, 0, err
	}

	all, err := r.queryPunches(ctx, q, punchBaselineQuery)
	if err != nil {
		return nil, 0, err
	}
	all = narrowPunches(all, filter)
	return pageSlice(all, page, limit), int64(len(all)), nil
}

func (r *punchRepositoryImpl) listFiltered(ctx context.Context, q database.Querier, filter punch.ListPunchFilter, limit, page int) ([]punch.Punch, int64, error) {
	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Kind != nil && *filter.Kind != "" {
		baseWhere += fmt.Sprintf(" AND p.kind = $%d", argIdx)
		args = append(args, *filter.Kind)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND p.punched_at::date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND p.punched_at::date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM punches p WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count punches: %w", err)
	}

	orderByField := "p.punched_at"
	switch filter.SortBy {
	case "created_at":
		orderByField = "p.created_at"
	case "kind":
		orderByField = "p.kind"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT p.id, p.employee_id, p.kind, p.punched_at, p.recorded_by, p.note, p.client_token, p.created_at,
			   e.full_name AS employee_name
		FROM punches p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

	args = append(args, limit, (page-1)*limit)

	punches, err := r.queryPunches(ctx, q, selectQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	return punches, total, nil
}

// punchBaselineQuery is the unconditional fetch used when a filtered query
// hits columns the deployed schema does not have yet.
const punchBaselineQuery = `
	SELECT p.id, p.employee_id, p.kind, p.punched_at, p.recorded_by, p.note, p.client_token, p.created_at,
		   e.full_name AS employee_name
	FROM punches p
	LEFT JOIN employees e ON e.id = p.employee_id
`

func (r *punchRepositoryImpl) queryPunches(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]punch.Punch, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var pu punch.Punch
		err := rows.Scan(
			&pu.ID, &pu.EmployeeID, &pu.Kind, &pu.PunchedAt, &pu.RecordedBy, &pu.Note, &pu.ClientToken, &pu.CreatedAt,
			&pu.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, pu)
	}

	return punches, nil
}

// narrowPunches applies a list filter in process, for reads served by the
// baseline query on a partially migrated schema. Sorting honors the filter's
// sort field and order the way the filtered query does.
func narrowPunches(punches []punch.Punch, filter punch.ListPunchFilter) []punch.Punch {
	var narrowed []punch.Punch
	for _, pu := range punches {
		day := pu.PunchedAt.Format("2006-01-02")
		if filter.EmployeeID != nil && *filter.EmployeeID != "" && pu.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Kind != nil && *filter.Kind != "" && string(pu.Kind) != *filter.Kind {
			continue
		}
		if filter.StartDate != nil && *filter.StartDate != "" && day < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && *filter.EndDate != "" && day > *filter.EndDate {
			continue
		}
		narrowed = append(narrowed, pu)
	}

	asc := strings.ToLower(filter.SortOrder) == "asc"
	sort.SliceStable(narrowed, func(i, j int) bool {
		a, b := narrowed[i], narrowed[j]
		if !asc {
			a, b = b, a
		}
		switch filter.SortBy {
		case "created_at":
			return a.CreatedAt.Before(b.CreatedAt)
		case "kind":
			return a.Kind < b.Kind
		default:
			return a.PunchedAt.Before(b.PunchedAt)
		}
	})
	return narrowed
}

// ListByEmployeeAndRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, punched_at, recorded_by, note, client_token, created_at
		FROM punches
		WHERE employee_id = $1
		  AND punched_at >= $2
		  AND punched_at < $3
		ORDER BY punched_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query punches by range: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var pu punch.Punch
		err := rows.Scan(
			&pu.ID, &pu.EmployeeID, &pu.Kind, &pu.PunchedAt, &pu.RecordedBy, &pu.Note, &pu.ClientToken, &pu.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, pu)
	}

	return punches, nil
}

// ExistsByClientToken implements punch.PunchRepository.
func (r *punchRepositoryImpl) ExistsByClientToken(ctx context.Context, employeeID string, day time.Time, kind punch.Kind, token string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM punches
			WHERE employee_id = $1
			  AND punched_at::date = $2
			  AND kind = $3
			  AND client_token = $4
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, day.Format("2006-01-02"), kind, token).Scan(&exists)
	if err != nil {
		if isSchemaDrift(err) {
			// Deployments without the client_token column cannot deduplicate;
			// treat every punch as new rather than reject it.
			return false, nil
		}
		return false, fmt.Errorf("failed to check punch client token: %w", err)
	}

	return exists, nil
}
