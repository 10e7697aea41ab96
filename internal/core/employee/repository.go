package employee

import "context"

// Repository は社員永続化の抽象です。
//
// FindByID と Delete は文字列の ID を受け取り、Save と Update はエンティティの整数 ID を使います。
// Update と Delete は対象行が存在しなくてもエラーを返しません。
type Repository interface {
	FindAll(ctx context.Context) ([]*Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Save(ctx context.Context, employee *Employee) error
	Update(ctx context.Context, employee *Employee) error
	Delete(ctx context.Context, id string) error
}
