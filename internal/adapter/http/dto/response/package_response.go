package response

import (
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
)

type PackageResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Speed         string `json:"speed"`
	Price         int64  `json:"price"`
	Description   string `json:"description,omitempty"`
	IsActive      bool   `json:"is_active"`
	CustomerCount int    `json:"customer_count"`
}

func FromPackage(p entities.Package) PackageResponse {
	return PackageResponse{
		ID:            p.ID,
		Name:          p.Name,
		Speed:         p.Speed,
		Price:         p.Price,
		Description:   p.Description,
		IsActive:      p.IsActive,
		CustomerCount: p.CustomerCount,
	}
}

func FromPackages(items []entities.Package) []PackageResponse {
	out := make([]PackageResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPackage(p))
	}
	return out
}
