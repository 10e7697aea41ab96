package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/db"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func newEqualMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestBindNamed_RewritesPlaceholdersInOrder(t *testing.T) {
	t.Parallel()

	sqlText, args, err := bindNamed(
		"UPDATE T SET A = :A, B = :B WHERE ID = :ID",
		db.Params{"ID": "1", "A": "a", "B": 2},
	)
	if err != nil {
		t.Fatalf("bindNamed returned error: %v", err)
	}

	if sqlText != "UPDATE T SET A = $1, B = $2 WHERE ID = $3" {
		t.Fatalf("unexpected sql %q", sqlText)
	}
	if len(args) != 3 || args[0] != "a" || args[1] != 2 || args[2] != "1" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestBindNamed_NoParameters(t *testing.T) {
	t.Parallel()

	sqlText, args, err := bindNamed("SELECT * FROM EMPLOYEES", nil)
	if err != nil {
		t.Fatalf("bindNamed returned error: %v", err)
	}
	if sqlText != "SELECT * FROM EMPLOYEES" || len(args) != 0 {
		t.Fatalf("unexpected result %q %v", sqlText, args)
	}
}

func TestBindNamed_MissingParameter(t *testing.T) {
	t.Parallel()

	if _, _, err := bindNamed("SELECT * FROM EMPLOYEES WHERE ID = :ID", db.Params{"id": "1"}); err == nil {
		t.Fatal("expected error for parameter name with different case")
	}
}

func TestNamedExecutor_Query(t *testing.T) {
	t.Parallel()

	mock := newEqualMockPool(t)
	exec := NewNamedExecutor(mock)

	mock.ExpectQuery("SELECT * FROM EMPLOYEES WHERE ID = $1").
		WithArgs("1").
		WillReturnRows(pgxmock.NewRows([]string{"ID", "FIRST_NAME"}).
			AddRow(int64(1), "Nikki").
			AddRow(int64(2), "Nicholas"))

	var names []string
	err := exec.Query(context.Background(), "SELECT * FROM EMPLOYEES WHERE ID = :ID", db.Params{"ID": "1"}, func(row db.Row) error {
		var (
			id   int64
			name string
		)
		if err := row.Scan(&id, &name); err != nil {
			return err
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}

	if len(names) != 2 || names[0] != "Nikki" || names[1] != "Nicholas" {
		t.Fatalf("unexpected names %v", names)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNamedExecutor_QueryStopsOnScanError(t *testing.T) {
	t.Parallel()

	mock := newEqualMockPool(t)
	exec := NewNamedExecutor(mock)

	mock.ExpectQuery("SELECT * FROM EMPLOYEES").
		WillReturnRows(pgxmock.NewRows([]string{"ID"}).AddRow(int64(1)).AddRow(int64(2)))

	scanErr := errors.New("mapping failed")
	calls := 0
	err := exec.Query(context.Background(), "SELECT * FROM EMPLOYEES", nil, func(db.Row) error {
		calls++
		return scanErr
	})

	if !errors.Is(err, scanErr) {
		t.Fatalf("expected scan error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected scan to stop after first error, got %d calls", calls)
	}
}

func TestNamedExecutor_QueryPropagatesStoreError(t *testing.T) {
	t.Parallel()

	mock := newEqualMockPool(t)
	exec := NewNamedExecutor(mock)

	storeErr := &pgconn.PgError{Code: "42P01", Message: "relation \"employees\" does not exist"}
	mock.ExpectQuery("SELECT * FROM EMPLOYEES").WillReturnError(storeErr)

	err := exec.Query(context.Background(), "SELECT * FROM EMPLOYEES", nil, func(db.Row) error { return nil })

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "42P01" {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestNamedExecutor_UpdateReturnsRowsAffected(t *testing.T) {
	t.Parallel()

	mock := newEqualMockPool(t)
	exec := NewNamedExecutor(mock)

	mock.ExpectExec("DELETE FROM EMPLOYEES WHERE ID = $1").
		WithArgs("1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	affected, err := exec.Update(context.Background(), "DELETE FROM EMPLOYEES WHERE ID = :ID", db.Params{"ID": "1"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 rows affected, got %d", affected)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNamedExecutor_UpdateUsesTransactionFromContext(t *testing.T) {
	t.Parallel()

	mock := newEqualMockPool(t)
	exec := NewNamedExecutor(mock)
	tm := NewTransactionManager(mock)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectExec("DELETE FROM EMPLOYEES WHERE ID = $1").
		WithArgs("2").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		_, err := exec.Update(ctx, "DELETE FROM EMPLOYEES WHERE ID = :ID", db.Params{"ID": "2"})
		return err
	})
	if err != nil {
		t.Fatalf("WithinReadWrite returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
