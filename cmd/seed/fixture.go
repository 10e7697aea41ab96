package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ogurasousui/codex-employee-repository/internal/core/employee"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

type fixture struct {
	Employees []employeeRecord `yaml:"employees"`
}

type employeeRecord struct {
	ID           int64           `yaml:"id"`
	FirstName    string          `yaml:"first_name"`
	MiddleName   *string         `yaml:"middle_name"`
	LastName     string          `yaml:"last_name"`
	Salary       decimal.Decimal `yaml:"salary"`
	SomeDate     string          `yaml:"some_date"`
	SomeTime     string          `yaml:"some_time"`
	SomeDatetime string          `yaml:"some_datetime"`
	Active       bool            `yaml:"active"`
}

func loadFixture(path string) ([]employee.EmployeeInput, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read fixture %s: %w", path, err)
	}
	return parseFixture(b)
}

func parseFixture(b []byte) ([]employee.EmployeeInput, error) {
	var f fixture
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("seed: parse fixture: %w", err)
	}

	inputs := make([]employee.EmployeeInput, 0, len(f.Employees))
	for i, rec := range f.Employees {
		in, err := rec.toInput()
		if err != nil {
			return nil, fmt.Errorf("seed: employees[%d]: %w", i, err)
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func (r employeeRecord) toInput() (employee.EmployeeInput, error) {
	in := employee.EmployeeInput{
		ID:         r.ID,
		FirstName:  r.FirstName,
		MiddleName: r.MiddleName,
		LastName:   r.LastName,
		Salary:     r.Salary,
		Active:     r.Active,
	}

	var err error
	if r.SomeDate != "" {
		if in.SomeDate, err = time.ParseInLocation(dateLayout, r.SomeDate, time.UTC); err != nil {
			return employee.EmployeeInput{}, fmt.Errorf("some_date: %w", err)
		}
	}
	if r.SomeTime != "" {
		if in.SomeTime, err = employee.ParseTimeOfDay(r.SomeTime); err != nil {
			return employee.EmployeeInput{}, fmt.Errorf("some_time: %w", err)
		}
	}
	if r.SomeDatetime != "" {
		if in.SomeDatetime, err = time.Parse(time.RFC3339, r.SomeDatetime); err != nil {
			return employee.EmployeeInput{}, fmt.Errorf("some_datetime: %w", err)
		}
	}
	return in, nil
}
