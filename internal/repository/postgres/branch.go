package postgres

import (
	"context"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"
)

type branchRepository struct {
	db repository.DBTX
}

func NewBranchRepository(db repository.DBTX) repository.BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Insert(ctx context.Context, b *domain.Branch) error {
	query := `INSERT INTO branch (branch_id, branch_name, branch_addr, branch_city, branch_phone) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, b.ID, b.Name, b.Address, b.City, b.Phone)
	return translateErr("insert branch", err)
}

func (r *branchRepository) Delete(ctx context.Context, id int32) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM branch WHERE branch_id = $1`, id)
	if err != nil {
		return 0, translateErr("delete branch", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, translateErr("delete branch", err)
	}
	return n, nil
}

func (r *branchRepository) UpdateName(ctx context.Context, id int32, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE branch SET branch_name = $1 WHERE branch_id = $2`, name, id)
	if err != nil {
		return 0, translateErr("update branch name", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, translateErr("update branch name", err)
	}
	return n, nil
}

func (r *branchRepository) List(ctx context.Context) ([]domain.Branch, error) {
	query := `SELECT branch_id, branch_name, branch_addr, branch_city, branch_phone FROM branch ORDER BY branch_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, translateErr("list branches", err)
	}
	defer rows.Close()

	var branches []domain.Branch
	for rows.Next() {
		var b domain.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.City, &b.Phone); err != nil {
			return nil, translateErr("scan branch", err)
		}
		branches = append(branches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr("iterate branches", err)
	}
	return branches, nil
}
