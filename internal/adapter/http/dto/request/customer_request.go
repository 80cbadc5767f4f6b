package request

type CreateCustomerRequest struct {
	Name           string `json:"name" binding:"required"`
	Location       string `json:"location"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email"`
	ConnectionType string `json:"connection_type"`
	Package        string `json:"package" binding:"required"`
	RouterMAC      string `json:"router_mac"`
}

type UpdateCustomerStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
