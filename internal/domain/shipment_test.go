package domain

import "testing"

func TestShipmentTransitions(t *testing.T) {
	allowed := []struct {
		from, to ShipmentStatus
	}{
		{ShipmentBooked, ShipmentInTransit},
		{ShipmentInTransit, ShipmentArrived},
		{ShipmentArrived, ShipmentDelivered},
		{ShipmentDelivered, ShipmentClosed},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct {
		from, to ShipmentStatus
	}{
		{ShipmentBooked, ShipmentArrived},
		{ShipmentInTransit, ShipmentBooked},
		{ShipmentClosed, ShipmentBooked},
		{ShipmentClosed, ShipmentClosed},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("%s -> %s should be denied", tc.from, tc.to)
		}
	}
}

func TestRecordStatusIsValid(t *testing.T) {
	for _, s := range ValidStatuses {
		if !s.IsValid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	if RecordStatus("bogus").IsValid() {
		t.Fatal("bogus status should be invalid")
	}
}

func TestLedgerViewIsValid(t *testing.T) {
	for _, v := range []LedgerView{ViewReceivable, ViewPayable, ViewGeneral} {
		if !v.IsValid() {
			t.Fatalf("%s should be valid", v)
		}
	}
	if LedgerView("sideways").IsValid() {
		t.Fatal("unknown view should be invalid")
	}
}
