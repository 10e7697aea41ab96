package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee は EMPLOYEES テーブルの 1 行に対応する社員エンティティです。
type Employee struct {
	ID           int64
	FirstName    string
	MiddleName   *string
	LastName     string
	Salary       decimal.Decimal
	SomeDate     time.Time
	SomeTime     TimeOfDay
	SomeDatetime time.Time
	Active       bool
}

// Equal は 2 つの社員が同じ値を保持しているかを判定します。
func (e *Employee) Equal(other *Employee) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.ID != other.ID || e.FirstName != other.FirstName || e.LastName != other.LastName || e.Active != other.Active {
		return false
	}
	if (e.MiddleName == nil) != (other.MiddleName == nil) {
		return false
	}
	if e.MiddleName != nil && *e.MiddleName != *other.MiddleName {
		return false
	}
	return e.Salary.Equal(other.Salary) &&
		e.SomeDate.Equal(other.SomeDate) &&
		e.SomeTime == other.SomeTime &&
		e.SomeDatetime.Equal(other.SomeDatetime)
}
