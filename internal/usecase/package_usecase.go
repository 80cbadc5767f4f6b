package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces"
)

var ErrPackageNotFound = errors.New("package not found")

type CreatePackageCommand struct {
	Name        string
	Speed       string
	Price       int64
	Description string
}

type IPackageUseCase interface {
	Create(ctx context.Context, cmd CreatePackageCommand) (entities.Package, error)
	GetByID(ctx context.Context, id string) (entities.Package, error)
	List(ctx context.Context) ([]entities.Package, error)
}

type PackageUseCase struct {
	repo interfaces.IPackageRepository
}

var _ IPackageUseCase = (*PackageUseCase)(nil)

func NewPackageUseCase(repo interfaces.IPackageRepository) *PackageUseCase {
	return &PackageUseCase{repo: repo}
}

func (u *PackageUseCase) Create(ctx context.Context, cmd CreatePackageCommand) (entities.Package, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Speed = strings.TrimSpace(cmd.Speed)
	if cmd.Name == "" {
		return entities.Package{}, fmt.Errorf("%w: name", ErrMissingField)
	}
	if cmd.Speed == "" {
		return entities.Package{}, fmt.Errorf("%w: speed", ErrMissingField)
	}
	if cmd.Price <= 0 {
		return entities.Package{}, ErrInvalidAmount
	}

	seq, err := u.repo.NextSequence(ctx)
	if err != nil {
		return entities.Package{}, err
	}

	p := entities.Package{
		ID:          FormatPackageID(seq),
		Name:        cmd.Name,
		Speed:       cmd.Speed,
		Price:       cmd.Price,
		Description: strings.TrimSpace(cmd.Description),
		IsActive:    true,
	}
	return u.repo.Create(ctx, p)
}

func (u *PackageUseCase) GetByID(ctx context.Context, id string) (entities.Package, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Package{}, fmt.Errorf("%w: package_id", ErrMissingField)
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Package{}, err
	}
	if p.ID == "" {
		return entities.Package{}, ErrPackageNotFound
	}
	return p, nil
}

func (u *PackageUseCase) List(ctx context.Context) ([]entities.Package, error) {
	return u.repo.List(ctx)
}

func FormatPackageID(seq int64) string {
	return fmt.Sprintf("PKG-%03d", seq)
}
