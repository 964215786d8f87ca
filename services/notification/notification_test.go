package notification

import (
	"context"
	"testing"
	"time"

	"sales/models"

	"github.com/goccy/go-json"
)

func TestEventBuilder(t *testing.T) {
	category := models.CategoryGirls
	sale := models.Sale{
		ID:          7,
		IDOrder:     "34033734",
		DatePayment: time.Date(2025, 2, 3, 15, 0, 0, 0, time.UTC),
		Category:    &category,
		Revenue:     10,
	}

	builder := NewEventBuilder(sale)
	fixed := time.Date(2025, 2, 3, 16, 0, 0, 0, time.FixedZone("CET", 3600))
	builder.now = func() time.Time { return fixed }

	event := builder.Build()
	if event.Event != EventSaleIngested {
		t.Errorf("event = %q", event.Event)
	}
	if len(event.EventID) != 36 {
		t.Errorf("event id = %q", event.EventID)
	}
	if !event.OccurredAt.Equal(fixed) || event.OccurredAt.Location() != time.UTC {
		t.Errorf("occurred at = %v", event.OccurredAt)
	}
	if event.Sale.ID != 7 || event.Sale.DatePayment != "2025-02-03T15:00:00" {
		t.Errorf("sale = %+v", event.Sale)
	}

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	sale2, ok := decoded["sale"].(map[string]interface{})
	if !ok || sale2["CATEGORY"] != "girls" || sale2["ID_ORDER"] != "34033734" {
		t.Errorf("payload = %s", data)
	}

	if other := NewEventBuilder(sale).Build(); other.EventID == event.EventID {
		t.Error("event ids must be unique")
	}
}

func TestNoopService(t *testing.T) {
	var svc Service = NoopService{}
	if err := svc.PublishSaleIngested(context.Background(), models.Sale{}); err != nil {
		t.Errorf("publish: %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}
