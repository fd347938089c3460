package domain

import "time"

// Customer is a shipper/consignee the forwarder bills.
type Customer struct {
	ID           int64     `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Country      string    `json:"country,omitempty"`
	PaymentTerms int       `json:"payment_terms"` // days
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// Vendor is a carrier, customs broker, transporter or other supplier.
type Vendor struct {
	ID           int64     `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	ServiceType  string    `json:"service_type,omitempty"` // carrier, customs, transport, ...
	ContactEmail string    `json:"contact_email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Country      string    `json:"country,omitempty"`
	PaymentTerms int       `json:"payment_terms"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// PartyFilter narrows customer/vendor lists
type PartyFilter struct {
	Country  *string
	IsActive *bool
	Search   *string
	Limit    int
	Offset   int
}
