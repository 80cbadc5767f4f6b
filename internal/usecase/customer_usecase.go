package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces"
)

var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrInvalidCustomerStatus = errors.New("invalid customer status")
	ErrInvalidConnectionType = errors.New("invalid connection type")
)

// CreateCustomerCommand carries the operator-entered fields for a new
// subscriber; the id is assigned from the repository sequence.
type CreateCustomerCommand struct {
	Name           string
	Location       string
	Phone          string
	Email          string
	ConnectionType entities.ConnectionType
	Package        string
	RouterMAC      string
}

type ICustomerUseCase interface {
	Create(ctx context.Context, cmd CreateCustomerCommand) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	UpdateStatus(ctx context.Context, id string, status entities.CustomerStatus) (entities.Customer, error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Create(ctx context.Context, cmd CreateCustomerCommand) (entities.Customer, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Phone = strings.TrimSpace(cmd.Phone)
	cmd.Package = strings.TrimSpace(cmd.Package)
	if cmd.Name == "" {
		return entities.Customer{}, fmt.Errorf("%w: name", ErrMissingField)
	}
	if cmd.Phone == "" {
		return entities.Customer{}, fmt.Errorf("%w: phone", ErrMissingField)
	}
	if cmd.Package == "" {
		return entities.Customer{}, fmt.Errorf("%w: package", ErrMissingField)
	}
	if cmd.ConnectionType != "" && !cmd.ConnectionType.Valid() {
		return entities.Customer{}, fmt.Errorf("%w: %s", ErrInvalidConnectionType, cmd.ConnectionType)
	}

	phone, err := NormalizePhoneNumber(cmd.Phone)
	if err != nil {
		return entities.Customer{}, err
	}

	seq, err := u.repo.NextSequence(ctx)
	if err != nil {
		return entities.Customer{}, err
	}

	c := entities.Customer{
		ID:             FormatCustomerID(seq),
		Name:           cmd.Name,
		Location:       strings.TrimSpace(cmd.Location),
		Phone:          phone,
		Email:          strings.TrimSpace(cmd.Email),
		ConnectionType: cmd.ConnectionType,
		Package:        cmd.Package,
		Status:         entities.CustomerStatusActive,
		RouterMAC:      strings.TrimSpace(cmd.RouterMAC),
	}
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, fmt.Errorf("%w: customer_id", ErrMissingField)
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

func (u *CustomerUseCase) UpdateStatus(ctx context.Context, id string, status entities.CustomerStatus) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, fmt.Errorf("%w: customer_id", ErrMissingField)
	}
	if !status.Valid() {
		return entities.Customer{}, ErrInvalidCustomerStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}

// FormatCustomerID renders a catalog sequence value as the public customer id.
func FormatCustomerID(seq int64) string {
	return fmt.Sprintf("CUST-%03d", seq)
}
