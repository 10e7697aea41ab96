package handler

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ogurasousui/codex-employee-repository/internal/core/employee"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/structpb"
)

const dateLayout = "2006-01-02"

const (
	fieldID           = "id"
	fieldFirstName    = "first_name"
	fieldMiddleName   = "middle_name"
	fieldLastName     = "last_name"
	fieldSalary       = "salary"
	fieldSomeDate     = "some_date"
	fieldSomeTime     = "some_time"
	fieldSomeDatetime = "some_datetime"
	fieldActive       = "active"
)

func employeeFields(emp *employee.Employee) map[string]any {
	var middle any
	if emp.MiddleName != nil {
		middle = *emp.MiddleName
	}

	return map[string]any{
		fieldID:           emp.ID,
		fieldFirstName:    emp.FirstName,
		fieldMiddleName:   middle,
		fieldLastName:     emp.LastName,
		fieldSalary:       emp.Salary.String(),
		fieldSomeDate:     formatTime(emp.SomeDate, dateLayout),
		fieldSomeTime:     emp.SomeTime.String(),
		fieldSomeDatetime: formatTime(emp.SomeDatetime, time.RFC3339Nano),
		fieldActive:       emp.Active,
	}
}

func formatTime(t time.Time, layout string) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(layout)
}

func parseEmployeeInput(s *structpb.Struct) (employee.EmployeeInput, error) {
	if s == nil {
		return employee.EmployeeInput{}, errors.New("request is required")
	}
	fields := s.GetFields()

	var (
		in  employee.EmployeeInput
		err error
	)

	if in.ID, err = parseID(fields[fieldID]); err != nil {
		return employee.EmployeeInput{}, fmt.Errorf("%s: %w", fieldID, err)
	}

	in.FirstName = stringField(fields[fieldFirstName])
	in.LastName = stringField(fields[fieldLastName])
	if v, ok := fields[fieldMiddleName]; ok && !isNull(v) {
		middle := stringField(v)
		in.MiddleName = &middle
	}

	if in.Salary, err = parseSalary(fields[fieldSalary]); err != nil {
		return employee.EmployeeInput{}, fmt.Errorf("%s: %w", fieldSalary, err)
	}

	if raw := stringField(fields[fieldSomeDate]); raw != "" {
		if in.SomeDate, err = time.ParseInLocation(dateLayout, raw, time.UTC); err != nil {
			return employee.EmployeeInput{}, fmt.Errorf("%s: invalid format, expected YYYY-MM-DD", fieldSomeDate)
		}
	}

	if raw := stringField(fields[fieldSomeTime]); raw != "" {
		if in.SomeTime, err = employee.ParseTimeOfDay(raw); err != nil {
			return employee.EmployeeInput{}, fmt.Errorf("%s: invalid format, expected HH:MM[:SS]", fieldSomeTime)
		}
	}

	if raw := stringField(fields[fieldSomeDatetime]); raw != "" {
		if in.SomeDatetime, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			return employee.EmployeeInput{}, fmt.Errorf("%s: invalid format, expected RFC 3339", fieldSomeDatetime)
		}
	}

	in.Active = fields[fieldActive].GetBoolValue()

	return in, nil
}

func parseID(v *structpb.Value) (int64, error) {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n != math.Trunc(n) || n >= math.MaxInt64 || n < math.MinInt64 {
			return 0, errors.New("must be an integer")
		}
		return int64(n), nil
	case *structpb.Value_StringValue:
		id, err := strconv.ParseInt(strings.TrimSpace(kind.StringValue), 10, 64)
		if err != nil {
			return 0, errors.New("must be an integer")
		}
		return id, nil
	default:
		return 0, errors.New("is required")
	}
}

func parseSalary(v *structpb.Value) (decimal.Decimal, error) {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		return decimal.NewFromFloat(kind.NumberValue), nil
	case *structpb.Value_StringValue:
		d, err := decimal.NewFromString(strings.TrimSpace(kind.StringValue))
		if err != nil {
			return decimal.Decimal{}, errors.New("must be a decimal number")
		}
		return d, nil
	case nil, *structpb.Value_NullValue:
		return decimal.Zero, nil
	default:
		return decimal.Decimal{}, errors.New("must be a decimal number")
	}
}

func stringField(v *structpb.Value) string {
	return v.GetStringValue()
}

func isNull(v *structpb.Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.GetKind().(*structpb.Value_NullValue)
	return ok
}
