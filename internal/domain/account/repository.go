package account

import "context"

type Repository interface {
	Save(ctx context.Context, account *Account) error
	FindByLogin(ctx context.Context, login string) (*Account, error)
	ExistsByLogin(ctx context.Context, login string) (bool, error)
}
