// Package sqlstore は名前付きパラメータ SQL による社員リポジトリの実装です。
package sqlstore

import (
	"database/sql"
	"time"

	"github.com/ogurasousui/codex-employee-repository/internal/core/employee"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/db"
	"github.com/shopspring/decimal"
)

// RowMapper は結果セットの 1 行を社員へ変換します。
type RowMapper interface {
	MapRow(row db.Row) (*employee.Employee, error)
}

// RowMapperFunc は関数を RowMapper として扱うためのアダプタです。
type RowMapperFunc func(row db.Row) (*employee.Employee, error)

// MapRow は f(row) を呼び出します。
func (f RowMapperFunc) MapRow(row db.Row) (*employee.Employee, error) {
	return f(row)
}

// EmployeeRowMapper は SELECT * の列順 (ID, FIRST_NAME, MIDDLE_NAME, LAST_NAME, SALARY,
// SOME_DATE, SOME_TIME, SOME_DATETIME, ACTIVE) で行を読み取ります。
// NULL の日付・時刻はゼロ値になります。
type EmployeeRowMapper struct{}

// MapRow は RowMapper を実装します。
func (EmployeeRowMapper) MapRow(row db.Row) (*employee.Employee, error) {
	var (
		id           int64
		firstName    string
		middleName   sql.NullString
		lastName     string
		salary       decimal.Decimal
		someDate     sql.NullTime
		someTime     employee.TimeOfDay
		someDatetime sql.NullTime
		active       bool
	)

	if err := row.Scan(
		&id,
		&firstName,
		&middleName,
		&lastName,
		&salary,
		&someDate,
		&someTime,
		&someDatetime,
		&active,
	); err != nil {
		return nil, err
	}

	var middlePtr *string
	if middleName.Valid {
		m := middleName.String
		middlePtr = &m
	}

	return &employee.Employee{
		ID:           id,
		FirstName:    firstName,
		MiddleName:   middlePtr,
		LastName:     lastName,
		Salary:       salary,
		SomeDate:     timeOrZero(someDate),
		SomeTime:     someTime,
		SomeDatetime: timeOrZero(someDatetime),
		Active:       active,
	}, nil
}

func timeOrZero(v sql.NullTime) time.Time {
	if !v.Valid {
		return time.Time{}
	}
	return v.Time
}
