package txmanager

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// nop выполняет функцию без транзакции, для in-memory хранилищ
type nop struct{}

func NewNop() trm.Manager {
	return nop{}
}

func (nop) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (nop) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
