//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/ogurasousui/codex-employee-repository/internal/core/employee"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/bootstrap"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/config"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const migrationsDir = "../assets/migrations"

func TestEmployeeCRUDIntegration(t *testing.T) {
	cfg, err := config.Load(configPathFromEnv())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if err := resetMigrations(cfg.Database.MigrateURL(), migrationsDir); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()
	emps, err := bootstrap.OpenEmployees(ctx, cfg.Database, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open employees: %v", err)
	}
	t.Cleanup(emps.Close)
	svc := emps.Service

	middle := "Domingo"
	in := employee.EmployeeInput{
		ID:           1,
		FirstName:    "Nikki Nicholas",
		MiddleName:   &middle,
		LastName:     "Romero",
		Salary:       decimal.RequireFromString("15000.00"),
		SomeDate:     time.Date(2020, 7, 2, 0, 0, 0, 0, time.UTC),
		SomeTime:     employee.NewTimeOfDay(7, 9),
		SomeDatetime: time.Date(2020, 7, 2, 7, 9, 0, 0, time.UTC),
		Active:       true,
	}

	created, err := svc.CreateEmployee(ctx, in)
	if err != nil {
		t.Fatalf("CreateEmployee error: %v", err)
	}

	found, err := svc.GetEmployee(ctx, employee.GetEmployeeInput{ID: "1"})
	if err != nil {
		t.Fatalf("GetEmployee error: %v", err)
	}
	if !found.Equal(created) {
		t.Fatalf("expected %+v, got %+v", created, found)
	}

	in.FirstName = "Nikki"
	in.Active = false
	if _, err := svc.UpdateEmployee(ctx, in); err != nil {
		t.Fatalf("UpdateEmployee error: %v", err)
	}

	all, err := svc.ListEmployees(ctx)
	if err != nil {
		t.Fatalf("ListEmployees error: %v", err)
	}
	if len(all) != 1 || all[0].FirstName != "Nikki" || all[0].Active {
		t.Fatalf("update not applied: %+v", all)
	}

	if err := svc.DeleteEmployee(ctx, employee.DeleteEmployeeInput{ID: "1"}); err != nil {
		t.Fatalf("DeleteEmployee error: %v", err)
	}
	if err := svc.DeleteEmployee(ctx, employee.DeleteEmployeeInput{ID: "1"}); err != nil {
		t.Fatalf("second DeleteEmployee error: %v", err)
	}

	if _, err := svc.GetEmployee(ctx, employee.GetEmployeeInput{ID: "1"}); !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func resetMigrations(databaseURL, dir string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	m, err := migrate.New("file://"+filepath.ToSlash(absDir), databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "../assets/local.yaml"
}
