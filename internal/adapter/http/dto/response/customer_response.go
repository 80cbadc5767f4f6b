package response

import (
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
)

type CustomerResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Location       string `json:"location,omitempty"`
	Phone          string `json:"phone"`
	Email          string `json:"email,omitempty"`
	ConnectionType string `json:"connection_type"`
	Package        string `json:"package"`
	Status         string `json:"status"`
	RouterMAC      string `json:"router_mac,omitempty"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Location:       c.Location,
		Phone:          c.Phone,
		Email:          c.Email,
		ConnectionType: string(c.ConnectionType),
		Package:        c.Package,
		Status:         string(c.Status),
		RouterMAC:      c.RouterMAC,
	}
}

func FromCustomers(items []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCustomer(c))
	}
	return out
}
