package postgres_test

import (
	"context"
	"errors"
	"testing"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestBranchRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBranchRepository(db)
	ctx := context.Background()

	phone := int32(5550199)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO branch \(branch_id, branch_name, branch_addr, branch_city, branch_phone\) VALUES \(\$1, \$2, \$3, \$4, \$5\)`).
			WithArgs(int32(1), "Downtown", "123 Main St", "Vancouver", &phone).
			WillReturnResult(sqlmock.NewResult(0, 1))

		branch := &domain.Branch{ID: 1, Name: "Downtown", Address: "123 Main St", City: "Vancouver", Phone: &phone}
		assert.NoError(t, repo.Insert(ctx, branch))
	})

	t.Run("Duplicate id maps to ErrConflict", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO branch \(branch_id, branch_name, branch_addr, branch_city, branch_phone\)`).
			WithArgs(int32(1), "Downtown", "123 Main St", "Vancouver", &phone).
			WillReturnError(&pq.Error{Code: "23505"})

		branch := &domain.Branch{ID: 1, Name: "Downtown", Address: "123 Main St", City: "Vancouver", Phone: &phone}
		err := repo.Insert(ctx, branch)
		assert.True(t, errors.Is(err, domain.ErrConflict))
	})
}

func TestBranchRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBranchRepository(db)
	ctx := context.Background()

	t.Run("Reports rows removed", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM branch WHERE branch_id = \$1`).
			WithArgs(int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := repo.Delete(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("Missing branch is zero rows, not an error", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM branch WHERE branch_id = \$1`).
			WithArgs(int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		n, err := repo.Delete(ctx, 99)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})
}

func TestBranchRepository_UpdateName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBranchRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE branch SET branch_name = \$1 WHERE branch_id = \$2`).
		WithArgs("Harbourfront", int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.UpdateName(ctx, 1, "Harbourfront")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestBranchRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBranchRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"branch_id", "branch_name", "branch_addr", "branch_city", "branch_phone"}).
		AddRow(1, "Downtown", "123 Main St", "Vancouver", 5550199).
		AddRow(2, "Airport", "1 Skyway Dr", "Richmond", nil)

	mock.ExpectQuery(`SELECT (.+) FROM branch ORDER BY branch_id`).
		WillReturnRows(rows)

	branches, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, branches, 2)
	assert.Equal(t, "Downtown", branches[0].Name)
	if assert.NotNil(t, branches[0].Phone) {
		assert.Equal(t, int32(5550199), *branches[0].Phone)
	}
	assert.Nil(t, branches[1].Phone)
}
