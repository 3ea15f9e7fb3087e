package pos

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
)

func testProduct(name string, priceCents int64, stock int) *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		Name:      name,
		UnitPrice: priceCents,
		Stock:     stock,
	}
}

func TestCartAddAndTotal(t *testing.T) {
	cart := New()
	paracetamol := testProduct("Paracetamol 500mg", 250, 10)
	ibuprofen := testProduct("Ibuprofen 400mg", 400, 5)

	if err := cart.Add(paracetamol, 2); err != nil {
		t.Fatalf("add paracetamol: %v", err)
	}
	if err := cart.Add(ibuprofen, 1); err != nil {
		t.Fatalf("add ibuprofen: %v", err)
	}

	if cart.Len() != 2 {
		t.Errorf("len = %d, want 2", cart.Len())
	}
	if cart.Total() != 900 {
		t.Errorf("total = %d, want 900", cart.Total())
	}
}

func TestCartAddMergesLines(t *testing.T) {
	cart := New()
	p := testProduct("Amoxicillin 250mg", 1200, 10)

	if err := cart.Add(p, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := cart.Add(p, 3); err != nil {
		t.Fatalf("second add: %v", err)
	}

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", items[0].Quantity)
	}
}

func TestCartAddCappedAtStock(t *testing.T) {
	cart := New()
	p := testProduct("Insulin", 4500, 3)

	if err := cart.Add(p, 3); err != nil {
		t.Fatalf("add up to stock: %v", err)
	}

	err := cart.Add(p, 1)
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stockErr.Available != 3 || stockErr.Requested != 4 {
		t.Errorf("got available %d requested %d, want 3 and 4", stockErr.Available, stockErr.Requested)
	}

	// quantity unchanged after the failed add
	if got := cart.Items()[0].Quantity; got != 3 {
		t.Errorf("quantity after failed add = %d, want 3", got)
	}
}

func TestCartAddRejectsNonPositiveQuantity(t *testing.T) {
	cart := New()
	p := testProduct("Aspirin", 100, 10)

	if err := cart.Add(p, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("add 0: got %v, want ErrInvalidQuantity", err)
	}
	if err := cart.Add(p, -2); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("add -2: got %v, want ErrInvalidQuantity", err)
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := New()
	p := testProduct("Cough Syrup", 800, 6)

	if err := cart.Add(p, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.UpdateQuantity(p.ID, 4); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := cart.Items()[0].Quantity; got != 4 {
		t.Errorf("quantity = %d, want 4", got)
	}

	if err := cart.UpdateQuantity(p.ID, 7); err == nil {
		t.Error("expected stock error updating beyond stock")
	}

	// zero removes the line
	if err := cart.UpdateQuantity(p.ID, 0); err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	if cart.Len() != 0 {
		t.Errorf("len = %d, want 0", cart.Len())
	}
}

func TestCartUpdateQuantityMissingItem(t *testing.T) {
	cart := New()
	if err := cart.UpdateQuantity(uuid.New(), 2); !errors.Is(err, ErrItemNotInCart) {
		t.Errorf("got %v, want ErrItemNotInCart", err)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := New()
	a := testProduct("A", 100, 5)
	b := testProduct("B", 200, 5)

	if err := cart.Add(a, 1); err != nil {
		t.Fatalf("add a: %v", err)
	}
	if err := cart.Add(b, 1); err != nil {
		t.Fatalf("add b: %v", err)
	}

	if err := cart.Remove(a.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if cart.Len() != 1 || cart.Total() != 200 {
		t.Errorf("after remove: len %d total %d, want 1 and 200", cart.Len(), cart.Total())
	}

	if err := cart.Remove(a.ID); !errors.Is(err, ErrItemNotInCart) {
		t.Errorf("remove again: got %v, want ErrItemNotInCart", err)
	}

	cart.Clear()
	if cart.Len() != 0 || cart.Total() != 0 {
		t.Errorf("after clear: len %d total %d, want 0 and 0", cart.Len(), cart.Total())
	}
}

func TestCartItemsReturnsCopy(t *testing.T) {
	cart := New()
	p := testProduct("C", 300, 5)
	if err := cart.Add(p, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	items := cart.Items()
	items[0].Quantity = 99

	if got := cart.Items()[0].Quantity; got != 2 {
		t.Errorf("internal quantity mutated through copy: %d", got)
	}
}
