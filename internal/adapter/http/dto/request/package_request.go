package request

import "encoding/json"

type CreatePackageRequest struct {
	Name        string          `json:"name" binding:"required"`
	Speed       string          `json:"speed" binding:"required"`
	Price       json.RawMessage `json:"price" binding:"required"`
	Description string          `json:"description"`
}

func (r CreatePackageRequest) ResolvePrice() (int64, error) {
	return resolveAmount(r.Price)
}
