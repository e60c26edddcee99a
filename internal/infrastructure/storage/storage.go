package storage

import (
	"context"
	"fmt"

	"svw.info/cube/internal/domain"
	"svw.info/cube/internal/ports"
)

// Open selects a backend by driver name: "sqlite", "fs" or "none".
// The returned close func is never nil.
func Open(driver, path string) (ports.Storage, func() error, error) {
	nop := func() error { return nil }
	switch driver {
	case "", "sqlite":
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, nop, err
		}
		return db, db.Close, nil
	case "fs":
		return NewFS(path), nop, nil
	case "none":
		return Discard{}, nop, nil
	}
	return nil, nop, domain.WrapCubeError(domain.ErrConfigInvalid, fmt.Sprintf("unknown storage driver %q", driver), nil)
}

// Discard drops every attempt.
type Discard struct{}

func (Discard) Record(context.Context, *domain.Attempt) error { return nil }

func (Discard) Get(context.Context, string) (*domain.Attempt, error) { return nil, domain.ErrNotFound }

func (Discard) List(context.Context, int) ([]domain.Attempt, error) { return nil, nil }
