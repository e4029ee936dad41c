package repository

import "context"

// Transactor - граница транзакции. Все вызовы репозиториев внутри fn,
// получившие переданный ctx, выполняются в одной транзакции.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
