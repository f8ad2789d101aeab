package dto

// CreateCustomerRequest datos para abrir una cuenta de cliente.
type CreateCustomerRequest struct {
	AccountNo     string
	Name          string
	Address       string
	Phone         string
	UnitsConsumed int
}

// UpdateCustomerRequest edición de cuenta con política "vacío deja igual":
// strings vacíos y punteros nil conservan el valor actual.
type UpdateCustomerRequest struct {
	Name          string
	Address       string
	Phone         string
	UnitsConsumed *int
}

// CustomerResponse vista de una cuenta de cliente.
type CustomerResponse struct {
	AccountNo     string
	Name          string
	Address       string
	Phone         string
	UnitsConsumed int
}
