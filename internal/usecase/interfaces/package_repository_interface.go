package interfaces

import (
	"context"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
)

type IPackageRepository interface {
	Create(ctx context.Context, p entities.Package) (entities.Package, error)
	GetByID(ctx context.Context, id string) (entities.Package, error)
	List(ctx context.Context) ([]entities.Package, error)
	NextSequence(ctx context.Context) (int64, error)
}
