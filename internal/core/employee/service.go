package employee

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service は社員に関するユースケースをまとめます。
//
// 入力検証と正規化はここで行い、Repository には検証済みの値だけを渡します。
type Service struct {
	repo Repository
	tx   TransactionManager
}

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	ListEmployees(ctx context.Context) ([]*Employee, error)
	GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error)
	CreateEmployee(ctx context.Context, in EmployeeInput) (*Employee, error)
	UpdateEmployee(ctx context.Context, in EmployeeInput) (*Employee, error)
	DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) error
	ImportEmployees(ctx context.Context, in []EmployeeInput) (int, error)
}

// NewService は Service を生成します。tx が nil の場合はトランザクションを張りません。
func NewService(repo Repository, tx TransactionManager) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, tx: tx}
}

// EmployeeInput は社員の作成・更新時の入力です。
type EmployeeInput struct {
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

// GetEmployeeInput は社員取得時の入力です。
type GetEmployeeInput struct {
	ID string
}

// DeleteEmployeeInput は社員削除時の入力です。
type DeleteEmployeeInput struct {
	ID string
}

// ListEmployees は全社員を取得します。
func (s *Service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	return s.repo.FindAll(ctx)
}

// GetEmployee は ID で社員を取得します。
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// CreateEmployee は新しい社員を登録します。ID は呼び出し側が指定します。
func (s *Service) CreateEmployee(ctx context.Context, in EmployeeInput) (*Employee, error) {
	emp, err := buildEmployee(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// UpdateEmployee は社員情報を上書きします。対象が存在しなくてもエラーにはなりません。
func (s *Service) UpdateEmployee(ctx context.Context, in EmployeeInput) (*Employee, error) {
	emp, err := buildEmployee(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// DeleteEmployee は社員を削除します。対象が存在しなくてもエラーにはなりません。
func (s *Service) DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) error {
	id, err := normalizeID(in.ID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ImportEmployees は複数の社員を 1 つの読み書きトランザクション内で登録します。
// いずれかが失敗した場合は全件ロールバックされます。
func (s *Service) ImportEmployees(ctx context.Context, in []EmployeeInput) (int, error) {
	if len(in) == 0 {
		return 0, ErrEmployeesRequired
	}

	employees := make([]*Employee, 0, len(in))
	for i, item := range in {
		emp, err := buildEmployee(item)
		if err != nil {
			return 0, fmt.Errorf("employees[%d]: %w", i, err)
		}
		employees = append(employees, emp)
	}

	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		for _, emp := range employees {
			if err := s.repo.Save(txCtx, emp); err != nil {
				return fmt.Errorf("save employee %d: %w", emp.ID, err)
			}
		}
		return nil
	}); err != nil {
		return 0, err
	}

	return len(employees), nil
}

func buildEmployee(in EmployeeInput) (*Employee, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	first := strings.TrimSpace(in.FirstName)
	if first == "" {
		return nil, ErrInvalidFirstName
	}

	last := strings.TrimSpace(in.LastName)
	if last == "" {
		return nil, ErrInvalidLastName
	}

	if in.Salary.IsNegative() {
		return nil, ErrInvalidSalary
	}

	if !in.SomeTime.IsValid() {
		return nil, ErrInvalidTimeOfDay
	}

	return &Employee{
		ID:           in.ID,
		FirstName:    first,
		MiddleName:   normalizeMiddleName(in.MiddleName),
		LastName:     last,
		Salary:       in.Salary,
		SomeDate:     normalizeDate(in.SomeDate),
		SomeTime:     in.SomeTime,
		SomeDatetime: normalizeDatetime(in.SomeDatetime),
		Active:       in.Active,
	}, nil
}

func normalizeID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("id: %w", ErrInvalidID)
	}
	if _, err := strconv.ParseInt(trimmed, 10, 64); err != nil {
		return "", fmt.Errorf("id %q: %w", raw, ErrInvalidID)
	}
	return trimmed, nil
}

func normalizeMiddleName(raw *string) *string {
	if raw == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func normalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func normalizeDatetime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
