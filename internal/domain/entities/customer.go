package entities

type ConnectionType string

const (
	ConnectionTypeFiber    ConnectionType = "fiber"
	ConnectionTypeWireless ConnectionType = "wireless"
)

func (t ConnectionType) Valid() bool {
	return t == ConnectionTypeFiber || t == ConnectionTypeWireless
}

type CustomerStatus string

const (
	CustomerStatusActive    CustomerStatus = "active"
	CustomerStatusInactive  CustomerStatus = "inactive"
	CustomerStatusSuspended CustomerStatus = "suspended"
)

func (s CustomerStatus) Valid() bool {
	switch s {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusSuspended:
		return true
	}
	return false
}

// Customer is a subscriber on the network. Payments reference customers by ID,
// never by free-text name.
type Customer struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Location       string         `json:"location"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	ConnectionType ConnectionType `json:"connection_type"`
	Package        string         `json:"package"`
	Status         CustomerStatus `json:"status"`
	RouterMAC      string         `json:"router_mac"`
}
