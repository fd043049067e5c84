package response

import (
	"testing"
	"time"

	"easydrive_booking/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:             "order-1",
		OrderCode:      "EDC-20260830-A1B2C3",
		UserID:         "user-1",
		CustomerName:   "Jordan Lee",
		RouteArea:      "Oshawa",
		ServiceType:    entities.ServiceTypePickup,
		VehicleType:    entities.VehicleTypeStandard,
		PriceBeforeTax: 385,
		Currency:       "CAD",
		Status:         entities.OrderStatusScheduled,
		PaymentStatus:  entities.PaymentStatusUnpaid,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	got := FromOrder(o)
	if got.OrderCode != "EDC-20260830-A1B2C3" || got.RouteArea != "Oshawa" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if got.PriceBeforeTax != 385 || got.Currency != "CAD" {
		t.Fatalf("unexpected price mapping: %+v", got)
	}
	if got.Status != string(entities.OrderStatusScheduled) {
		t.Fatalf("unexpected status: %q", got.Status)
	}
}

func TestFromTimeline(t *testing.T) {
	o := entities.Order{
		OrderCode:     "EDC-20260830-A1B2C3",
		CustomerName:  "Jordan Lee",
		CustomerEmail: "jordan@dealer.example",
		RouteArea:     "Montreal",
		ServiceType:   entities.ServiceTypeDelivery,
		Status:        entities.OrderStatusInTransit,
		PaymentStatus: entities.PaymentStatusPaid,
	}
	events := []entities.StatusEvent{
		{Status: entities.OrderStatusInTransit, Note: "Left terminal"},
		{Status: entities.OrderStatusScheduled, Note: "Order created"},
	}

	got := FromTimeline(o, events)
	if len(got.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got.Events))
	}
	if got.Events[0].Note != "Left terminal" {
		t.Fatalf("expected event order preserved, got %+v", got.Events)
	}
	if got.Status != string(entities.OrderStatusInTransit) {
		t.Fatalf("unexpected status: %q", got.Status)
	}
}

func TestFromDraft_MapsQuote(t *testing.T) {
	d := entities.Draft{
		ID:       "draft-1",
		FormData: &entities.ShipmentForm{},
		Quote: &entities.Quote{
			Cost:          435,
			PricingRegion: "Toronto",
			PricingStatus: entities.PricingStatusOfficial,
		},
		DocCount: 2,
	}

	got := FromDraft(d)
	if got.Quote == nil || got.Quote.Cost != 435 {
		t.Fatalf("expected mapped quote, got %+v", got.Quote)
	}
	if got.Quote.Currency != "CAD" {
		t.Fatalf("expected CAD, got %q", got.Quote.Currency)
	}
	if got.DocCount != 2 {
		t.Fatalf("expected 2 documents, got %d", got.DocCount)
	}

	noQuote := FromDraft(entities.Draft{ID: "draft-2", NeedsExtraction: true})
	if noQuote.Quote != nil {
		t.Fatalf("expected nil quote, got %+v", noQuote.Quote)
	}
}
