package employee

import "errors"

var (
	ErrInvalidID         = errors.New("employee: invalid id")
	ErrInvalidFirstName  = errors.New("employee: invalid first name")
	ErrInvalidLastName   = errors.New("employee: invalid last name")
	ErrInvalidSalary     = errors.New("employee: invalid salary")
	ErrInvalidTimeOfDay  = errors.New("employee: invalid time of day")
	ErrEmployeeNotFound  = errors.New("employee: not found")
	ErrEmployeesRequired = errors.New("employee: at least one employee is required")
)
