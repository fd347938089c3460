package domain

import "time"

// RecordStatus is the lifecycle status of a monetary source document
type RecordStatus string

const (
	StatusDraft         RecordStatus = "draft"
	StatusSent          RecordStatus = "sent"
	StatusPaid          RecordStatus = "paid"
	StatusPartiallyPaid RecordStatus = "partially_paid"
	StatusOverdue       RecordStatus = "overdue"
	StatusCancelled     RecordStatus = "cancelled"
	StatusPending       RecordStatus = "pending"
)

// ValidStatuses lists every accepted record status.
var ValidStatuses = []RecordStatus{
	StatusDraft,
	StatusSent,
	StatusPaid,
	StatusPartiallyPaid,
	StatusOverdue,
	StatusCancelled,
	StatusPending,
}

func (s RecordStatus) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// PartyType identifies which side of the ledger a record belongs to
type PartyType string

const (
	PartyTypeCustomer PartyType = "customer"
	PartyTypeVendor   PartyType = "vendor"
)

// SourceType tags which document a ledger entry was derived from
type SourceType string

const (
	SourceInvoice    SourceType = "invoice"
	SourceExpense    SourceType = "expense"
	SourceVendorBill SourceType = "vendor_bill"
)

// Invoice is a receivable (or payable, for vendor-side invoices)
// document raised against a counterparty.
type Invoice struct {
	ID            int64        `json:"id"`
	InvoiceNumber string       `json:"invoice_number"`
	PartyType     PartyType    `json:"party_type,omitempty"`
	PartyID       string       `json:"party_id,omitempty"`
	PartyName     string       `json:"party_name,omitempty"`
	CustomerID    string       `json:"customer_id,omitempty"` // legacy field, see ResolveParty
	CustomerName  string       `json:"customer_name,omitempty"`
	VendorID      string       `json:"vendor_id,omitempty"`
	VendorName    string       `json:"vendor_name,omitempty"`
	Date          time.Time    `json:"date"`
	Currency      string       `json:"currency"`
	Amount        *float64     `json:"amount"`
	AmountPaid    *float64     `json:"amount_paid"`
	Status        RecordStatus `json:"status"`
	JobNumber     string       `json:"job_number,omitempty"`
	Notes         string       `json:"notes,omitempty"`
	CreatedAt     time.Time    `json:"-"`
	UpdatedAt     time.Time    `json:"-"`
}

// ExpenseCategory buckets operating expenses for display
type ExpenseCategory string

const (
	ExpenseFreight       ExpenseCategory = "freight"
	ExpenseCustomsDuty   ExpenseCategory = "customs_duty"
	ExpensePortHandling  ExpenseCategory = "port_handling"
	ExpenseTransport     ExpenseCategory = "transport"
	ExpenseWarehousing   ExpenseCategory = "warehousing"
	ExpenseDocumentation ExpenseCategory = "documentation"
	ExpenseOffice        ExpenseCategory = "office"
	ExpenseSalaries      ExpenseCategory = "salaries"
	ExpenseOther         ExpenseCategory = "other"
)

// ExpenseCategoryLabels maps categories to display names used as the
// party name on derived expense entries.
var ExpenseCategoryLabels = map[ExpenseCategory]string{
	ExpenseFreight:       "Freight Charges",
	ExpenseCustomsDuty:   "Customs & Duty",
	ExpensePortHandling:  "Port & Handling",
	ExpenseTransport:     "Local Transport",
	ExpenseWarehousing:   "Warehousing",
	ExpenseDocumentation: "Documentation",
	ExpenseOffice:        "Office & Admin",
	ExpenseSalaries:      "Salaries & Wages",
	ExpenseOther:         "Other Expenses",
}

// Expense is an operating cost record not tied to a vendor bill.
type Expense struct {
	ID        int64           `json:"id"`
	Category  ExpenseCategory `json:"category"`
	Date      time.Time       `json:"date"`
	Currency  string          `json:"currency"`
	Amount    *float64        `json:"amount"`
	Status    RecordStatus    `json:"status"`
	JobNumber string          `json:"job_number,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}

// VendorBill is a payable raised by a vendor (carrier, customs agent,
// transporter) against the forwarder.
type VendorBill struct {
	ID         int64        `json:"id"`
	BillNumber string       `json:"bill_number"`
	VendorID   string       `json:"vendor_id"`
	VendorName string       `json:"vendor_name"`
	Date       time.Time    `json:"date"`
	Currency   string       `json:"currency"`
	Amount     *float64     `json:"amount"`
	Status     RecordStatus `json:"status"`
	JobNumber  string       `json:"job_number,omitempty"`
	Notes      string       `json:"notes,omitempty"`
	CreatedAt  time.Time    `json:"-"`
	UpdatedAt  time.Time    `json:"-"`
}

// RecordFilter carries the common list predicates for source documents
type RecordFilter struct {
	PartyID   *string
	Status    *RecordStatus
	JobNumber *string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}
