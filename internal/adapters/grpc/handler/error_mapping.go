package handler

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/ogurasousui/codex-employee-repository/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const uniqueViolationCode = "23505"

func toStatusError(err error) error {
	var (
		pgErr     *pgconn.PgError
		sqliteErr sqlite3.Error
	)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, employee.ErrInvalidID),
		errors.Is(err, employee.ErrInvalidFirstName),
		errors.Is(err, employee.ErrInvalidLastName),
		errors.Is(err, employee.ErrInvalidSalary),
		errors.Is(err, employee.ErrInvalidTimeOfDay),
		errors.Is(err, employee.ErrEmployeesRequired):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode:
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.As(err, &sqliteErr) && isSQLiteDuplicate(sqliteErr):
		return status.Error(codes.AlreadyExists, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func isSQLiteDuplicate(err sqlite3.Error) bool {
	return err.ExtendedCode == sqlite3.ErrConstraintPrimaryKey || err.ExtendedCode == sqlite3.ErrConstraintUnique
}
