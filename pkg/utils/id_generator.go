package utils

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ReferenceGenerator issues document references: ULIDs for opaque IDs
// and prefixed, date-stamped numbers for human-facing documents.
type ReferenceGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	seq     uint32
}

func NewReferenceGenerator() *ReferenceGenerator {
	return &ReferenceGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// NewULID returns a sortable, URL-safe unique identifier.
// Example: 01ARZ3NDEKTSV4RRFFQ69G5FAV
func (g *ReferenceGenerator) NewULID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String()
}

// prefixed returns PREFIX-YYYYMM-SEQ, e.g. INV-202608-0042. The
// sequence resets on restart; uniqueness is enforced by the database
// unique constraint, this just keeps references readable.
func (g *ReferenceGenerator) prefixed(prefix string) string {
	g.mu.Lock()
	g.seq++
	seq := g.seq
	g.mu.Unlock()

	return fmt.Sprintf("%s-%s-%04d", prefix, time.Now().Format("200601"), seq)
}

func (g *ReferenceGenerator) NewInvoiceNumber() string { return g.prefixed("INV") }

func (g *ReferenceGenerator) NewBillNumber() string { return g.prefixed("BILL") }

func (g *ReferenceGenerator) NewJobNumber() string { return g.prefixed("JOB") }
