package domain

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/DRSN-tech/kitchen-backend/pkg/e"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func avocadoToast() MenuItem {
	return NewMenuItem(1, "Avocado Toast", "Sourdough bread with smashed avocado", dec("10.99"), CategoryBreakfast, "🥑")
}

func icedCoffee() MenuItem {
	return NewMenuItem(14, "Iced Coffee", "Cold brew coffee with milk and syrup", dec("3.99"), CategoryDrinks, "🥤")
}

func assertTotal(t *testing.T, c Cart, want string) {
	t.Helper()
	if got := c.TotalPrice(); !got.Equal(dec(want)) {
		t.Fatalf("TotalPrice() = %s, want %s", got.StringFixed(2), want)
	}
}

func TestCart_AvocadoToastScenario(t *testing.T) {
	item := avocadoToast()

	cart := Cart{}.Add(item)
	line, ok := cart.Line(1)
	if !ok || line.Quantity != 1 || cart.Len() != 1 {
		t.Fatalf("expected one line with qty 1, got %+v", cart.Lines())
	}
	assertTotal(t, cart, "10.99")

	cart = cart.Add(item)
	if line, _ := cart.Line(1); line.Quantity != 2 {
		t.Fatalf("expected qty 2, got %d", line.Quantity)
	}
	assertTotal(t, cart, "21.98")

	cart = cart.SetQuantity(1, 5)
	if line, _ := cart.Line(1); line.Quantity != 5 {
		t.Fatalf("expected qty 5, got %d", line.Quantity)
	}
	assertTotal(t, cart, "54.95")

	cart = cart.Remove(1)
	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart, got %+v", cart.Lines())
	}
	assertTotal(t, cart, "0.00")
}

func TestCart_EmptyAggregates(t *testing.T) {
	var cart Cart

	if !cart.TotalPrice().Equal(decimal.Zero) {
		t.Fatalf("empty total = %s", cart.TotalPrice())
	}
	if cart.TotalPrice().StringFixed(2) != "0.00" {
		t.Fatalf("empty total display = %s", cart.TotalPrice().StringFixed(2))
	}
	if cart.ItemCount() != 0 {
		t.Fatalf("empty count = %d", cart.ItemCount())
	}
}

func TestCart_AddTwiceIncreasesCountByTwo(t *testing.T) {
	pre := Cart{}.Add(icedCoffee())
	before := pre.ItemCount()

	post := pre.Add(avocadoToast()).Add(avocadoToast())

	if line, _ := post.Line(1); line.Quantity != 2 {
		t.Fatalf("expected qty 2, got %d", line.Quantity)
	}
	if post.ItemCount()-before != 2 {
		t.Fatalf("item count grew by %d, want 2", post.ItemCount()-before)
	}
}

func TestCart_AddKeepsOriginalItemFields(t *testing.T) {
	original := avocadoToast()
	stale := original
	stale.Name = "Renamed Toast"
	stale.Price = dec("99.00")

	cart := Cart{}.Add(original).Add(stale)

	line, _ := cart.Line(1)
	if line.Item.Name != "Avocado Toast" || !line.Item.Price.Equal(dec("10.99")) {
		t.Fatalf("line item was overwritten: %+v", line.Item)
	}
	if line.Quantity != 2 {
		t.Fatalf("expected qty 2, got %d", line.Quantity)
	}
}

func TestCart_OrderPreserved(t *testing.T) {
	a := avocadoToast()
	b := icedCoffee()
	c := NewMenuItem(9, "Grilled Salmon", "Atlantic salmon", dec("22.99"), CategoryDinner, "🐟")

	cart := Cart{}.Add(a).Add(b).Add(c).Add(a).SetQuantity(14, 3)

	lines := cart.Lines()
	ids := []int64{lines[0].Item.ID, lines[1].Item.ID, lines[2].Item.ID}
	if !reflect.DeepEqual(ids, []int64{1, 14, 9}) {
		t.Fatalf("unexpected order %v", ids)
	}

	cart = cart.Remove(14)
	lines = cart.Lines()
	if len(lines) != 2 || lines[0].Item.ID != 1 || lines[1].Item.ID != 9 {
		t.Fatalf("unexpected lines after remove: %+v", lines)
	}
}

func TestCart_SetQuantityZeroEqualsRemove(t *testing.T) {
	cart := Cart{}.Add(avocadoToast()).Add(icedCoffee()).Add(icedCoffee())

	for _, qty := range []int{0, -1, -10} {
		if got, want := cart.SetQuantity(14, qty), cart.Remove(14); !reflect.DeepEqual(got, want) {
			t.Fatalf("SetQuantity(%d) = %+v, Remove = %+v", qty, got.Lines(), want.Lines())
		}
	}
}

func TestCart_AbsentIDIsNoop(t *testing.T) {
	cart := Cart{}.Add(avocadoToast())

	if got := cart.SetQuantity(42, 3); !reflect.DeepEqual(got, cart) {
		t.Fatalf("SetQuantity on absent id changed cart: %+v", got.Lines())
	}
	if got := cart.Remove(42); !reflect.DeepEqual(got, cart) {
		t.Fatalf("Remove on absent id changed cart: %+v", got.Lines())
	}
}

func TestCart_ClearIsIdempotent(t *testing.T) {
	cart := Cart{}.Add(avocadoToast()).Add(icedCoffee())

	once := cart.Clear()
	twice := once.Clear()

	if !reflect.DeepEqual(once, twice) || !reflect.DeepEqual(once, Cart{}) {
		t.Fatalf("Clear is not idempotent: %+v vs %+v", once.Lines(), twice.Lines())
	}
}

func TestCart_PreviousSnapshotStaysValid(t *testing.T) {
	base := Cart{}.Add(avocadoToast())

	_ = base.Add(avocadoToast())
	_ = base.SetQuantity(1, 7)
	_ = base.Add(icedCoffee())
	_ = base.Clear()

	line, _ := base.Line(1)
	if base.Len() != 1 || line.Quantity != 1 {
		t.Fatalf("base snapshot mutated: %+v", base.Lines())
	}

	lines := base.Lines()
	lines[0].Quantity = 100
	if line, _ := base.Line(1); line.Quantity != 1 {
		t.Fatal("Lines() exposes internal storage")
	}
}

func TestCart_NoDuplicateIDsUnderRandomActions(t *testing.T) {
	items := []MenuItem{avocadoToast(), icedCoffee(), NewMenuItem(9, "Salmon", "x", dec("22.99"), CategoryDinner, "")}

	cart := Cart{}
	for i := 0; i < 300; i++ {
		item := items[(i*7)%len(items)]
		switch i % 5 {
		case 0, 1:
			cart = cart.Add(item)
		case 2:
			cart = cart.SetQuantity(item.ID, (i%4)-1)
		case 3:
			cart = cart.Remove(item.ID)
		case 4:
			cart = cart.SetQuantity(item.ID, i%6)
		}

		seen := map[int64]bool{}
		for _, line := range cart.Lines() {
			if seen[line.Item.ID] {
				t.Fatalf("step %d: duplicate id %d", i, line.Item.ID)
			}
			if line.Quantity < 1 {
				t.Fatalf("step %d: line %d has quantity %d", i, line.Item.ID, line.Quantity)
			}
			seen[line.Item.ID] = true
		}
	}
}

func TestCart_Checkout(t *testing.T) {
	if _, err := (Cart{}).Checkout(); !errors.Is(err, e.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	cart := Cart{}.Add(avocadoToast()).Add(icedCoffee()).Add(icedCoffee())
	summary, err := cart.Checkout()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !summary.Total.Equal(cart.TotalPrice()) || !summary.Total.Equal(dec("18.97")) {
		t.Fatalf("summary total %s, cart total %s", summary.Total, cart.TotalPrice())
	}
	if summary.ItemCount != 3 || len(summary.Lines) != 2 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if cart.Len() != 2 {
		t.Fatal("checkout must not clear the cart")
	}
}

func TestCart_JSONRoundTripAndRestoreValidation(t *testing.T) {
	cart := Cart{}.Add(avocadoToast()).Add(avocadoToast()).Add(icedCoffee())

	data, err := json.Marshal(cart)
	if err != nil {
		t.Fatal(err)
	}

	var restored Cart
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatal(err)
	}
	if !restored.TotalPrice().Equal(cart.TotalPrice()) || restored.ItemCount() != 3 {
		t.Fatalf("restored cart differs: %+v", restored.Lines())
	}

	bad := []CartLine{{Item: avocadoToast(), Quantity: 1}, {Item: avocadoToast(), Quantity: 2}}
	if _, err := RestoreCart(bad); !errors.Is(err, e.ErrCorruptedSnapshot) {
		t.Fatalf("expected ErrCorruptedSnapshot for duplicate ids, got %v", err)
	}

	zero := []CartLine{{Item: icedCoffee(), Quantity: 0}}
	if _, err := RestoreCart(zero); !errors.Is(err, e.ErrCorruptedSnapshot) {
		t.Fatalf("expected ErrCorruptedSnapshot for zero quantity, got %v", err)
	}

	empty, err := RestoreCart(nil)
	if err != nil || !reflect.DeepEqual(empty, Cart{}) {
		t.Fatalf("RestoreCart(nil) = %+v, %v", empty.Lines(), err)
	}
}

func TestCart_QuantityIsCapped(t *testing.T) {
	toast := avocadoToast()

	cart := Cart{}.Add(toast).SetQuantity(1, math.MaxInt).Add(toast)
	line, _ := cart.Line(1)
	if line.Quantity != MaxQuantity {
		t.Fatalf("quantity = %d, want %d", line.Quantity, MaxQuantity)
	}
	if cart.ItemCount() != MaxQuantity || cart.TotalPrice().IsNegative() {
		t.Fatalf("ItemCount = %d, TotalPrice = %s", cart.ItemCount(), cart.TotalPrice())
	}

	two := cart.Add(icedCoffee()).SetQuantity(14, math.MaxInt)
	if two.ItemCount() != 2*MaxQuantity {
		t.Fatalf("ItemCount = %d, want %d", two.ItemCount(), 2*MaxQuantity)
	}

	over := []CartLine{{Item: toast, Quantity: MaxQuantity + 1}}
	if _, err := RestoreCart(over); !errors.Is(err, e.ErrCorruptedSnapshot) {
		t.Fatalf("expected ErrCorruptedSnapshot above the limit, got %v", err)
	}
}
