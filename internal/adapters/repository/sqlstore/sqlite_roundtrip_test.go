package sqlstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ogurasousui/codex-employee-repository/internal/core/employee"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/config"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/db"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/db/sqlite"
)

const createEmployeesMigration = "../../../../assets/migrations/000001_create_employees.up.sql"

func newSQLiteRepository(t *testing.T) *EmployeeRepository {
	t.Helper()

	return NewEmployeeRepository(newSQLiteExecutor(t), EmployeeRowMapper{})
}

func newSQLiteExecutor(t *testing.T) *sqlite.Executor {
	t.Helper()

	ctx := context.Background()
	conn, err := sqlite.Open(ctx, config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "employees.db"),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	schema, err := os.ReadFile(createEmployeesMigration)
	if err != nil {
		t.Fatalf("failed to read migration: %v", err)
	}
	if _, err := conn.ExecContext(ctx, string(schema)); err != nil {
		t.Fatalf("failed to apply migration: %v", err)
	}

	return sqlite.NewExecutor(conn)
}

func TestSQLite_SaveFindUpdateDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newSQLiteRepository(t)
	want := referenceEmployee()

	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := repo.FindByID(ctx, "1")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}

	updated := referenceEmployee()
	updated.LastName = "Santos"
	updated.MiddleName = nil
	updated.Active = false
	if err := repo.Update(ctx, updated); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, err = repo.FindByID(ctx, "1")
	if err != nil {
		t.Fatalf("FindByID after update returned error: %v", err)
	}
	if !got.Equal(updated) {
		t.Fatalf("update not applied: got %+v want %+v", got, updated)
	}

	for i := 0; i < 2; i++ {
		if err := repo.Delete(ctx, "1"); err != nil {
			t.Fatalf("Delete call %d returned error: %v", i+1, err)
		}
	}

	if _, err := repo.FindByID(ctx, "1"); !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound after delete, got %v", err)
	}
}

func TestSQLite_FindAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newSQLiteRepository(t)

	empty, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll on empty table returned error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no employees, got %d", len(empty))
	}

	for id := int64(1); id <= 3; id++ {
		e := referenceEmployee()
		e.ID = id
		if err := repo.Save(ctx, e); err != nil {
			t.Fatalf("Save %d returned error: %v", id, err)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 employees, got %d", len(all))
	}
}

func TestSQLite_SaveDuplicateFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newSQLiteRepository(t)

	if err := repo.Save(ctx, referenceEmployee()); err != nil {
		t.Fatalf("first Save returned error: %v", err)
	}
	if err := repo.Save(ctx, referenceEmployee()); err == nil {
		t.Fatal("expected uniqueness violation on duplicate id")
	}
}

func TestSQLite_UpdateMissingIsSilent(t *testing.T) {
	t.Parallel()

	repo := newSQLiteRepository(t)

	if err := repo.Update(context.Background(), referenceEmployee()); err != nil {
		t.Fatalf("Update of missing row returned error: %v", err)
	}
}

func TestSQLite_FindAllWithNullTemporalColumns(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	exec := newSQLiteExecutor(t)
	repo := NewEmployeeRepository(exec, EmployeeRowMapper{})

	if err := repo.Save(ctx, referenceEmployee()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if _, err := exec.Update(ctx,
		"INSERT INTO EMPLOYEES (ID, FIRST_NAME, LAST_NAME, SALARY, ACTIVE) VALUES (:ID, :FIRST_NAME, :LAST_NAME, :SALARY, :ACTIVE)",
		db.Params{"ID": 2, "FIRST_NAME": "Ada", "LAST_NAME": "Lovelace", "SALARY": "100", "ACTIVE": true},
	); err != nil {
		t.Fatalf("failed to insert row with null dates: %v", err)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(all))
	}

	got, err := repo.FindByID(ctx, "2")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if !got.SomeDate.IsZero() || !got.SomeDatetime.IsZero() || got.SomeTime != (employee.TimeOfDay{}) {
		t.Fatalf("expected zero temporal fields, got %+v", got)
	}
	if got.FirstName != "Ada" || !got.Active {
		t.Fatalf("unexpected employee %+v", got)
	}
}
