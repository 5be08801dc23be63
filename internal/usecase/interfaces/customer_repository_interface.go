package interfaces

import (
	"context"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

// IVehicleRepository abstracts DynamoDB persistence for Vehicle. Update is
// driven by the paperwork flow (title/registration fields).
type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}
