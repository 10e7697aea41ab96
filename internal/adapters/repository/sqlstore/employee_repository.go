package sqlstore

import (
	"context"

	"github.com/ogurasousui/codex-employee-repository/internal/core/employee"
	"github.com/ogurasousui/codex-employee-repository/internal/platform/db"
)

const (
	findAllSQL  = "SELECT * FROM EMPLOYEES"
	findByIDSQL = "SELECT * FROM EMPLOYEES WHERE ID = :ID"
	insertSQL   = "INSERT INTO EMPLOYEES (ID, FIRST_NAME, MIDDLE_NAME, LAST_NAME, SALARY, SOME_DATE, SOME_TIME, SOME_DATETIME, ACTIVE) " +
		" VALUES (:ID, :FIRST_NAME, :MIDDLE_NAME, :LAST_NAME, :SALARY, :SOME_DATE, :SOME_TIME, :SOME_DATETIME, :ACTIVE)"
	updateSQL = "UPDATE EMPLOYEES SET FIRST_NAME = :FIRST_NAME, MIDDLE_NAME = :MIDDLE_NAME, LAST_NAME = :LAST_NAME, " +
		"SALARY = :SALARY, SOME_DATE = :SOME_DATE, SOME_TIME = :SOME_TIME, SOME_DATETIME = :SOME_DATETIME, ACTIVE = :ACTIVE WHERE ID = :ID"
	deleteSQL = "DELETE FROM EMPLOYEES WHERE ID = :ID"
)

// パラメータ名は SQL テンプレートのプレースホルダと完全一致 (大文字小文字を区別) させます。
const (
	paramID           = "ID"
	paramFirstName    = "FIRST_NAME"
	paramMiddleName   = "MIDDLE_NAME"
	paramLastName     = "LAST_NAME"
	paramSalary       = "SALARY"
	paramSomeDate     = "SOME_DATE"
	paramSomeTime     = "SOME_TIME"
	paramSomeDatetime = "SOME_DATETIME"
	paramActive       = "ACTIVE"
)

var _ employee.Repository = (*EmployeeRepository)(nil)

// EmployeeRepository は名前付きパラメータ SQL で EMPLOYEES テーブルを操作する社員リポジトリです。
//
// 状態は注入された SQL 実行器と行マッパーのみで、どちらも並行利用可能である必要があります。
// 1 回の呼び出しにつき SQL は 1 回だけ実行され、リトライやトランザクションは行いません。
type EmployeeRepository struct {
	exec   db.Executor
	mapper RowMapper
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(exec db.Executor, mapper RowMapper) *EmployeeRepository {
	return &EmployeeRepository{exec: exec, mapper: mapper}
}

// FindAll は全社員をストアが返した順で取得します。0 件の場合は空のスライスを返します。
func (r *EmployeeRepository) FindAll(ctx context.Context) ([]*employee.Employee, error) {
	return r.query(ctx, findAllSQL, db.Params{})
}

// FindByID は ID に一致する最初の社員を返します。ID は文字列のまま束縛されます。
// 一致する行がない場合は employee.ErrEmployeeNotFound を返します。
func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	found, err := r.query(ctx, findByIDSQL, idParameter(id))
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, employee.ErrEmployeeNotFound
	}
	return found[0], nil
}

// Save は社員を登録します。ID は呼び出し側が指定し、生成された ID は返しません。
func (r *EmployeeRepository) Save(ctx context.Context, e *employee.Employee) error {
	_, err := r.exec.Update(ctx, insertSQL, employeeParameter(e))
	return err
}

// Update は ID に一致する社員を上書きします。影響行数は確認しません。
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	_, err := r.exec.Update(ctx, updateSQL, employeeParameter(e))
	return err
}

// Delete は ID に一致する社員を削除します。影響行数は確認しません。
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.exec.Update(ctx, deleteSQL, idParameter(id))
	return err
}

func (r *EmployeeRepository) query(ctx context.Context, query string, params db.Params) ([]*employee.Employee, error) {
	employees := make([]*employee.Employee, 0)
	err := r.exec.Query(ctx, query, params, func(row db.Row) error {
		e, err := r.mapper.MapRow(row)
		if err != nil {
			return err
		}
		employees = append(employees, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func employeeParameter(e *employee.Employee) db.Params {
	return db.Params{
		paramID:           e.ID,
		paramFirstName:    e.FirstName,
		paramMiddleName:   nullableString(e.MiddleName),
		paramLastName:     e.LastName,
		paramSalary:       e.Salary,
		paramSomeDate:     e.SomeDate,
		paramSomeTime:     e.SomeTime,
		paramSomeDatetime: e.SomeDatetime,
		paramActive:       e.Active,
	}
}

func idParameter(id string) db.Params {
	return db.Params{paramID: id}
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}
