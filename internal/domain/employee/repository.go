package employee

import "context"

type Repository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, e Employee) error
	Delete(ctx context.Context, id string) error
}
