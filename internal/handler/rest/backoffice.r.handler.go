package hrest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"freight-backoffice/internal/domain"
	"freight-backoffice/internal/usecase"
	"freight-backoffice/pkg/response"
	"freight-backoffice/pkg/xerrors"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
)

type BackofficeRestHandler struct {
	partyUC     *usecase.PartyUsecase
	invoiceUC   *usecase.InvoiceUsecase
	expenseUC   *usecase.ExpenseUsecase
	shipmentUC  *usecase.ShipmentUsecase
	ledgerUC    *usecase.LedgerUsecase
	statementUC *usecase.StatementUsecase
	currencyUC  *usecase.CurrencyUsecase
}

func NewBackofficeRestHandler(
	partyUC *usecase.PartyUsecase,
	invoiceUC *usecase.InvoiceUsecase,
	expenseUC *usecase.ExpenseUsecase,
	shipmentUC *usecase.ShipmentUsecase,
	ledgerUC *usecase.LedgerUsecase,
	statementUC *usecase.StatementUsecase,
	currencyUC *usecase.CurrencyUsecase,
) *BackofficeRestHandler {
	return &BackofficeRestHandler{
		partyUC:     partyUC,
		invoiceUC:   invoiceUC,
		expenseUC:   expenseUC,
		shipmentUC:  shipmentUC,
		ledgerUC:    ledgerUC,
		statementUC: statementUC,
		currencyUC:  currencyUC,
	}
}

func (h *BackofficeRestHandler) registerRoutes(r chi.Router) {
	r.Route("/backoffice", func(r chi.Router) {
		r.Get("/currencies", h.GetCurrencyOptions)
		r.Post("/currencies/convert", h.ConvertCurrency)

		r.Route("/customers", func(r chi.Router) {
			r.Post("/", h.CreateCustomer)
			r.Get("/", h.ListCustomers)
			r.Get("/{id}", h.GetCustomer)
			r.Put("/{id}", h.UpdateCustomer)
			r.Delete("/{id}", h.DeleteCustomer)
		})

		r.Route("/vendors", func(r chi.Router) {
			r.Post("/", h.CreateVendor)
			r.Get("/", h.ListVendors)
			r.Get("/{id}", h.GetVendor)
			r.Put("/{id}", h.UpdateVendor)
			r.Delete("/{id}", h.DeleteVendor)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Post("/", h.CreateInvoice)
			r.Get("/", h.ListInvoices)
			r.Get("/job/{jobNumber}", h.ListInvoicesByJob)
			r.Get("/{id}", h.GetInvoice)
			r.Put("/{id}", h.UpdateInvoice)
			r.Delete("/{id}", h.DeleteInvoice)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", h.CreateExpense)
			r.Get("/", h.ListExpenses)
			r.Get("/{id}", h.GetExpense)
			r.Put("/{id}", h.UpdateExpense)
			r.Delete("/{id}", h.DeleteExpense)
		})

		r.Route("/vendor-bills", func(r chi.Router) {
			r.Post("/", h.CreateBill)
			r.Get("/", h.ListBills)
			r.Get("/{id}", h.GetBill)
			r.Put("/{id}", h.UpdateBill)
			r.Delete("/{id}", h.DeleteBill)
		})

		r.Route("/shipments", func(r chi.Router) {
			r.Post("/", h.CreateShipment)
			r.Get("/", h.ListShipments)
			r.Get("/job/{jobNumber}", h.GetShipmentByJob)
			r.Get("/{id}", h.GetShipment)
			r.Put("/{id}", h.UpdateShipment)
			r.Post("/{id}/status", h.TransitionShipment)
			r.Delete("/{id}", h.DeleteShipment)
		})

		r.Route("/ledger", func(r chi.Router) {
			r.Get("/{view}", h.GetLedgerStatement)
			r.Get("/{view}/balance", h.GetLedgerBalance)
			r.Get("/{view}/aging", h.GetLedgerAging)
		})

		r.Route("/statements", func(r chi.Router) {
			r.Get("/profit-loss", h.GetProfitLoss)
			r.Get("/balance-sheet", h.GetBalanceSheet)
		})

		r.Route("/gl", func(r chi.Router) {
			r.Get("/accounts", h.ListAccounts)
			r.Post("/entries", h.PostGLEntry)
			r.Get("/entries", h.ListGLEntries)
		})
	})
}

func (h *BackofficeRestHandler) Start(port string) {
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Register routes
	h.registerRoutes(r)

	server := &http.Server{
		Addr:    port,
		Handler: r,
	}

	log.Printf("🚀 Backoffice REST service running on %s", port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("failed to start server: %v", err)
	}
}

// ===============================
// CURRENCIES
// ===============================

func (h *BackofficeRestHandler) GetCurrencyOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.currencyUC.Options(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, options)
}

type convertJSON struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}

func (h *BackofficeRestHandler) ConvertCurrency(w http.ResponseWriter, r *http.Request) {
	var in convertJSON
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	converted, err := h.currencyUC.Convert(in.Amount, in.From, in.To)
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"amount":    in.Amount,
		"from":      in.From,
		"to":        in.To,
		"converted": converted,
		"formatted": h.currencyUC.Format(converted, in.To),
	})
}

// ===============================
// CUSTOMERS
// ===============================

func (h *BackofficeRestHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var c domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.partyUC.CreateCustomer(r.Context(), &c); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, c)
}

func (h *BackofficeRestHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	c, err := h.partyUC.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, c)
}

func (h *BackofficeRestHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	var c domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c.ID = id
	if err := h.partyUC.UpdateCustomer(r.Context(), &c); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, c)
}

func (h *BackofficeRestHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.partyUC.DeleteCustomer(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]int64{"deleted": id})
}

func (h *BackofficeRestHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.partyUC.ListCustomers(r.Context(), partyFilterFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, customers)
}

// ===============================
// VENDORS
// ===============================

func (h *BackofficeRestHandler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var v domain.Vendor
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.partyUC.CreateVendor(r.Context(), &v); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, v)
}

func (h *BackofficeRestHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	v, err := h.partyUC.GetVendor(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, v)
}

func (h *BackofficeRestHandler) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	var v domain.Vendor
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	v.ID = id
	if err := h.partyUC.UpdateVendor(r.Context(), &v); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, v)
}

func (h *BackofficeRestHandler) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.partyUC.DeleteVendor(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]int64{"deleted": id})
}

func (h *BackofficeRestHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.partyUC.ListVendors(r.Context(), partyFilterFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, vendors)
}

// ===============================
// INVOICES
// ===============================

func (h *BackofficeRestHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var inv domain.Invoice
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.invoiceUC.Create(r.Context(), &inv); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, inv)
}

func (h *BackofficeRestHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	inv, err := h.invoiceUC.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, inv)
}

func (h *BackofficeRestHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	var inv domain.Invoice
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	inv.ID = id
	if err := h.invoiceUC.Update(r.Context(), &inv); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, inv)
}

func (h *BackofficeRestHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.invoiceUC.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]int64{"deleted": id})
}

func (h *BackofficeRestHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoiceUC.List(r.Context(), recordFilterFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, invoices)
}

func (h *BackofficeRestHandler) ListInvoicesByJob(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoiceUC.ListByJob(r.Context(), chi.URLParam(r, "jobNumber"))
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, invoices)
}

// ===============================
// EXPENSES
// ===============================

func (h *BackofficeRestHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var e domain.Expense
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.expenseUC.CreateExpense(r.Context(), &e); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, e)
}

func (h *BackofficeRestHandler) GetExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	e, err := h.expenseUC.GetExpense(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, e)
}

func (h *BackofficeRestHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	var e domain.Expense
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e.ID = id
	if err := h.expenseUC.UpdateExpense(r.Context(), &e); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, e)
}

func (h *BackofficeRestHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.expenseUC.DeleteExpense(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]int64{"deleted": id})
}

func (h *BackofficeRestHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenseUC.ListExpenses(r.Context(), recordFilterFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, expenses)
}

// ===============================
// VENDOR BILLS
// ===============================

func (h *BackofficeRestHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	var b domain.VendorBill
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.expenseUC.CreateBill(r.Context(), &b); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, b)
}

func (h *BackofficeRestHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	b, err := h.expenseUC.GetBill(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, b)
}

func (h *BackofficeRestHandler) UpdateBill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	var b domain.VendorBill
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	b.ID = id
	if err := h.expenseUC.UpdateBill(r.Context(), &b); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, b)
}

func (h *BackofficeRestHandler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.expenseUC.DeleteBill(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]int64{"deleted": id})
}

func (h *BackofficeRestHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.expenseUC.ListBills(r.Context(), recordFilterFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, bills)
}

// ===============================
// SHIPMENTS
// ===============================

func (h *BackofficeRestHandler) CreateShipment(w http.ResponseWriter, r *http.Request) {
	var s domain.Shipment
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.shipmentUC.Create(r.Context(), &s); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, s)
}

func (h *BackofficeRestHandler) GetShipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	s, err := h.shipmentUC.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, s)
}

func (h *BackofficeRestHandler) GetShipmentByJob(w http.ResponseWriter, r *http.Request) {
	s, err := h.shipmentUC.GetByJobNumber(r.Context(), chi.URLParam(r, "jobNumber"))
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, s)
}

func (h *BackofficeRestHandler) UpdateShipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	var s domain.Shipment
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.ID = id
	if err := h.shipmentUC.Update(r.Context(), &s); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, s)
}

type transitionJSON struct {
	Status string `json:"status"`
}

func (h *BackofficeRestHandler) TransitionShipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	var in transitionJSON
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s, err := h.shipmentUC.Transition(r.Context(), id, domain.ShipmentStatus(in.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, s)
}

func (h *BackofficeRestHandler) DeleteShipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.shipmentUC.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]int64{"deleted": id})
}

func (h *BackofficeRestHandler) ListShipments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ShipmentFilter{}
	if v := q.Get("customer_id"); v != "" {
		filter.CustomerID = &v
	}
	if v := q.Get("direction"); v != "" {
		d := domain.ShipmentDirection(v)
		filter.Direction = &d
	}
	if v := q.Get("status"); v != "" {
		s := domain.ShipmentStatus(v)
		filter.Status = &s
	}
	filter.Limit, filter.Offset = pagination(r)

	shipments, err := h.shipmentUC.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, shipments)
}

// ===============================
// LEDGER VIEWS
// ===============================

func (h *BackofficeRestHandler) GetLedgerStatement(w http.ResponseWriter, r *http.Request) {
	view := domain.LedgerView(chi.URLParam(r, "view"))
	includeSettled := r.URL.Query().Get("include_settled") == "true"

	stmt, err := h.ledgerUC.GetStatement(r.Context(), view, displayCurrency(r),
		recordFilterFromQuery(r), includeSettled)
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, stmt)
}

func (h *BackofficeRestHandler) GetLedgerBalance(w http.ResponseWriter, r *http.Request) {
	view := domain.LedgerView(chi.URLParam(r, "view"))

	balance, err := h.ledgerUC.CurrentBalance(r.Context(), view, displayCurrency(r),
		recordFilterFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"view":     view,
		"currency": displayCurrency(r),
		"balance":  balance,
	})
}

func (h *BackofficeRestHandler) GetLedgerAging(w http.ResponseWriter, r *http.Request) {
	view := domain.LedgerView(chi.URLParam(r, "view"))

	report, err := h.ledgerUC.GetAgingReport(r.Context(), view, displayCurrency(r),
		recordFilterFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, report)
}

// ===============================
// FINANCIAL STATEMENTS & GL
// ===============================

func (h *BackofficeRestHandler) GetProfitLoss(w http.ResponseWriter, r *http.Request) {
	from, ok := queryTime(r, "from")
	if !ok {
		from = time.Now().AddDate(0, -1, 0)
	}
	to, ok := queryTime(r, "to")
	if !ok {
		to = time.Now()
	}

	stmt, err := h.statementUC.GenerateProfitLoss(r.Context(), from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, stmt)
}

func (h *BackofficeRestHandler) GetBalanceSheet(w http.ResponseWriter, r *http.Request) {
	asOf, ok := queryTime(r, "as_of")
	if !ok {
		asOf = time.Now()
	}

	stmt, err := h.statementUC.GenerateBalanceSheet(r.Context(), asOf)
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, stmt)
}

func (h *BackofficeRestHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.statementUC.ListAccounts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, accounts)
}

func (h *BackofficeRestHandler) PostGLEntry(w http.ResponseWriter, r *http.Request) {
	var e domain.GLEntry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.statementUC.PostGLEntry(r.Context(), &e); err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, e)
}

func (h *BackofficeRestHandler) ListGLEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.GLEntryFilter{}
	if v := q.Get("account_code"); v != "" {
		filter.AccountCode = &v
	}
	if v := q.Get("code_prefix"); v != "" {
		filter.CodePrefix = &v
	}
	if from, ok := queryTime(r, "from"); ok {
		filter.StartDate = &from
	}
	if to, ok := queryTime(r, "to"); ok {
		filter.EndDate = &to
	}
	filter.Limit, filter.Offset = pagination(r)

	entries, err := h.statementUC.ListGLEntries(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, entries)
}

// ===============================
// HELPERS
// ===============================

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func displayCurrency(r *http.Request) string {
	if c := r.URL.Query().Get("currency"); c != "" {
		return c
	}
	return "USD"
}

func pagination(r *http.Request) (limit, offset int) {
	q := r.URL.Query()
	limit, _ = strconv.Atoi(q.Get("limit"))
	offset, _ = strconv.Atoi(q.Get("offset"))
	return limit, offset
}

// queryTime accepts dates as 2006-01-02 or full RFC3339 timestamps.
func queryTime(r *http.Request, key string) (time.Time, bool) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func partyFilterFromQuery(r *http.Request) domain.PartyFilter {
	q := r.URL.Query()
	filter := domain.PartyFilter{}
	if v := q.Get("country"); v != "" {
		filter.Country = &v
	}
	if v := q.Get("active"); v != "" {
		active := v == "true"
		filter.IsActive = &active
	}
	if v := q.Get("search"); v != "" {
		filter.Search = &v
	}
	filter.Limit, filter.Offset = pagination(r)
	return filter
}

func recordFilterFromQuery(r *http.Request) domain.RecordFilter {
	q := r.URL.Query()
	filter := domain.RecordFilter{}
	if v := q.Get("party_id"); v != "" {
		filter.PartyID = &v
	}
	if v := q.Get("status"); v != "" {
		s := domain.RecordStatus(v)
		filter.Status = &s
	}
	if v := q.Get("job_number"); v != "" {
		filter.JobNumber = &v
	}
	if from, ok := queryTime(r, "from"); ok {
		filter.StartDate = &from
	}
	if to, ok := queryTime(r, "to"); ok {
		filter.EndDate = &to
	}
	filter.Limit, filter.Offset = pagination(r)
	return filter
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, xerrors.ErrNotFound),
		errors.Is(err, xerrors.ErrRecordNotFound),
		errors.Is(err, xerrors.ErrCustomerNotFound),
		errors.Is(err, xerrors.ErrVendorNotFound),
		errors.Is(err, xerrors.ErrShipmentNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, xerrors.ErrInvalidInput),
		errors.Is(err, xerrors.ErrInvalidAmount),
		errors.Is(err, xerrors.ErrUnknownStatus),
		errors.Is(err, xerrors.ErrInvalidPeriod),
		errors.Is(err, xerrors.ErrJobNumberRequired),
		errors.Is(err, xerrors.ErrInvalidRequest):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, xerrors.ErrInvalidTransition),
		errors.Is(err, xerrors.ErrDuplicateRef):
		response.Error(w, http.StatusConflict, err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, err.Error())
	}
}
