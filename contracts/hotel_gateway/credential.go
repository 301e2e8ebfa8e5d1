package hotel_gateway

// SaveCredentialRequest represents the request payload for storing a client's supplier login
type SaveCredentialRequest struct {
	SupplierCode string `json:"-" validate:"required,max=50"`
	ClientID     string `json:"-" validate:"required,max=64"`
	Username     string `json:"username" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

// DeleteCredentialRequest represents the request for removing a client's supplier login
type DeleteCredentialRequest struct {
	SupplierCode string `validate:"required,max=50"`
	ClientID     string `validate:"required,max=64"`
}

// CredentialResponse represents a stored override; the login itself is never returned
type CredentialResponse struct {
	ID           string `json:"id"`
	SupplierCode string `json:"supplier_code"`
	ClientID     string `json:"client_id"`
	UpdatedAt    string `json:"updated_at"`
}
