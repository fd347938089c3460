package xerrors

import "errors"
import "github.com/jackc/pgx/v5/pgconn"

func ParsePGErrorCode(err error) string {
	if pgErr, ok := err.(*pgconn.PgError); ok {
		return pgErr.Code // e.g. 23505 for unique_violation
	}
	return "unknown"
}

// Generic
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input provided")
)

// Records / ledger derivation
var (
	ErrInvalidAmount    = errors.New("invalid monetary amount")
	ErrUnknownStatus    = errors.New("unknown record status")
	ErrDuplicateRef     = errors.New("reference number already in use")
	ErrRecordNotFound   = errors.New("record not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrVendorNotFound   = errors.New("vendor not found")
)

// Shipments
var (
	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrInvalidTransition = errors.New("invalid shipment status transition")
	ErrJobNumberRequired = errors.New("job number required")
)

// Statements
var (
	ErrInvalidPeriod  = errors.New("invalid statement period")
	ErrUnknownBucket  = errors.New("unknown statement bucket")
	ErrDuplicateRoute = errors.New("account code routed to more than one bucket")
)
