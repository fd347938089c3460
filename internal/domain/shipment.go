package domain

import "time"

// ShipmentDirection is import or export
type ShipmentDirection string

const (
	DirectionImport ShipmentDirection = "import"
	DirectionExport ShipmentDirection = "export"
)

// ShipmentMode is the transport mode
type ShipmentMode string

const (
	ModeSea ShipmentMode = "sea"
	ModeAir ShipmentMode = "air"
)

// ShipmentStatus tracks a job through its lifecycle
type ShipmentStatus string

const (
	ShipmentBooked    ShipmentStatus = "booked"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentArrived   ShipmentStatus = "arrived"
	ShipmentDelivered ShipmentStatus = "delivered"
	ShipmentClosed    ShipmentStatus = "closed"
)

// shipmentTransitions lists the allowed forward moves for each status.
var shipmentTransitions = map[ShipmentStatus][]ShipmentStatus{
	ShipmentBooked:    {ShipmentInTransit},
	ShipmentInTransit: {ShipmentArrived},
	ShipmentArrived:   {ShipmentDelivered},
	ShipmentDelivered: {ShipmentClosed},
	ShipmentClosed:    {},
}

// CanTransitionTo reports whether a status change is allowed.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	for _, allowed := range shipmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Shipment is one import/export job. Invoices, expenses and vendor
// bills attach to it through the job number.
type Shipment struct {
	ID          int64             `json:"id"`
	JobNumber   string            `json:"job_number"`
	Direction   ShipmentDirection `json:"direction"`
	Mode        ShipmentMode      `json:"mode"`
	CustomerID  string            `json:"customer_id"`
	OriginPort  string            `json:"origin_port"`
	DestPort    string            `json:"dest_port"`
	ETD         *time.Time        `json:"etd,omitempty"`
	ETA         *time.Time        `json:"eta,omitempty"`
	Status      ShipmentStatus    `json:"status"`
	BLNumber    string            `json:"bl_number,omitempty"` // bill of lading / airway bill
	Description string            `json:"description,omitempty"`
	CreatedAt   time.Time         `json:"-"`
	UpdatedAt   time.Time         `json:"-"`
}

// ShipmentFilter narrows shipment lists
type ShipmentFilter struct {
	CustomerID *string
	Direction  *ShipmentDirection
	Status     *ShipmentStatus
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Offset     int
}
