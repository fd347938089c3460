package ledger

import "freight-backoffice/internal/domain"

// partyCandidate is one source in the resolution chain: an explicit
// id/name pair that may or may not be populated.
type partyCandidate struct {
	ID   string
	Name string
}

// ResolvedParty is the outcome of the fallback chain.
type ResolvedParty struct {
	Type domain.PartyType
	ID   string
	Name string
}

// ResolveParty walks an ordered list of candidate sources and takes
// the first non-empty id and the first non-empty name independently.
// Exhausted candidates leave the field empty rather than erroring.
func ResolveParty(partyType domain.PartyType, candidates ...partyCandidate) ResolvedParty {
	resolved := ResolvedParty{Type: partyType}
	for _, c := range candidates {
		if resolved.ID == "" && c.ID != "" {
			resolved.ID = c.ID
		}
		if resolved.Name == "" && c.Name != "" {
			resolved.Name = c.Name
		}
		if resolved.ID != "" && resolved.Name != "" {
			break
		}
	}
	return resolved
}

// resolveInvoiceParty applies the invoice fallback policy: explicit
// party fields first, then the type-specific legacy customer/vendor
// fields. An unspecified party type defaults to customer.
func resolveInvoiceParty(inv *domain.Invoice) ResolvedParty {
	partyType := inv.PartyType
	if partyType == "" {
		partyType = domain.PartyTypeCustomer
	}

	legacy := partyCandidate{ID: inv.CustomerID, Name: inv.CustomerName}
	if partyType == domain.PartyTypeVendor {
		legacy = partyCandidate{ID: inv.VendorID, Name: inv.VendorName}
	}

	return ResolveParty(partyType,
		partyCandidate{ID: inv.PartyID, Name: inv.PartyName},
		legacy,
	)
}
