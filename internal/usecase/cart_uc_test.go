package usecase

import (
	"errors"
	"testing"

	"github.com/hogardeco/hogar/internal/domain"
)

func TestCartUC_SessionLifecycle(t *testing.T) {
	uc := NewCartUC()
	id := uc.NewSession()

	state, err := uc.Get(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Items) != 0 || state.IsOpen {
		t.Error("new session should start empty and closed")
	}

	uc.Drop(id)
	if _, err := uc.Get(id); !errors.Is(err, domain.ErrNoSession) {
		t.Errorf("expected ErrNoSession after drop, got %v", err)
	}
}

func TestCartUC_UnknownSessionFailsFast(t *testing.T) {
	uc := NewCartUC()

	if _, err := uc.Get("nope"); !errors.Is(err, domain.ErrNoSession) {
		t.Errorf("Get: expected ErrNoSession, got %v", err)
	}
	if _, err := uc.Dispatch("nope", domain.CartAction{Type: domain.ActionClearCart}); !errors.Is(err, domain.ErrNoSession) {
		t.Errorf("Dispatch: expected ErrNoSession, got %v", err)
	}
	if _, err := uc.Totals("nope"); !errors.Is(err, domain.ErrNoSession) {
		t.Errorf("Totals: expected ErrNoSession, got %v", err)
	}
	if _, err := uc.ItemCount("nope"); !errors.Is(err, domain.ErrNoSession) {
		t.Errorf("ItemCount: expected ErrNoSession, got %v", err)
	}
}

func TestCartUC_DispatchAndDerivedQueries(t *testing.T) {
	uc := NewCartUC()
	id := uc.NewSession()

	sofa := domain.Product{Code: "SOF-OSL-001", Price: 1299, Discount: 10}
	state, err := uc.Dispatch(id, domain.CartAction{Type: domain.ActionAddItem, Product: sofa})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Items) != 1 || state.Items[0].Quantity != 1 {
		t.Fatalf("expected one line with quantity 1, got %+v", state.Items)
	}

	tot, err := uc.Totals(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tot.Subtotal < 1169.09 || tot.Subtotal > 1169.11 {
		t.Errorf("expected subtotal 1169.10, got %v", tot.Subtotal)
	}
	if tot.Shipping != 0 {
		t.Errorf("expected free shipping, got %v", tot.Shipping)
	}

	count, err := uc.ItemCount(id)
	if err != nil || count != 1 {
		t.Errorf("expected item count 1, got %d (err %v)", count, err)
	}
}

func TestCartUC_SessionsAreIsolated(t *testing.T) {
	uc := NewCartUC()
	a := uc.NewSession()
	b := uc.NewSession()

	_, err := uc.Dispatch(a, domain.CartAction{Type: domain.ActionAddItem, Product: domain.Product{Code: "X", Price: 10}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stateB, err := uc.Get(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stateB.Items) != 0 {
		t.Error("dispatch on one session leaked into another")
	}
}
