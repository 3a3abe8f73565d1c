package supply

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDataReturnsIsolatedCopies(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := SeedData(now)
	b := SeedData(now)

	a.Branches[0].Name = "changed"
	*a.Products[0].Discount = 0.5

	assert.Equal(t, "Meowtown Branch", b.Branches[0].Name)
	assert.Equal(t, 0.25, *b.Products[0].Discount)
}

func TestSeedDataShape(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := SeedData(now)

	assert.Len(t, s.Suppliers, 3)
	assert.Len(t, s.Products, 12)
	assert.Len(t, s.Headquarters, 1)
	assert.Len(t, s.Branches, 2)
	assert.Len(t, s.Orders, 2)
	assert.Len(t, s.OrderDetails, 3)
	assert.Len(t, s.Deliveries, 2)
	assert.Len(t, s.OrderDetailDeliveries, 3)

	assert.Equal(t, "2026-03-01T12:00:00.000Z", s.Orders[0].OrderDate)
	assert.Equal(t, "2026-03-08T12:00:00.000Z", s.Deliveries[0].DeliveryDate)
	assert.Equal(t, "2026-03-03T12:00:00.000Z", s.Deliveries[1].DeliveryDate)
}

func TestProductJSONOmitsMissingDiscount(t *testing.T) {
	s := SeedData(time.Now())

	raw, err := json.Marshal(s.Products[2])
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "discount")

	raw, err = json.Marshal(s.Products[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"discount":0.25`)
	assert.Contains(t, string(raw), `"productId":1`)
	assert.Contains(t, string(raw), `"imgName":"feeder.png"`)
}

func TestSalePrice(t *testing.T) {
	half := 0.5
	tests := []struct {
		name    string
		product Product
		want    string
	}{
		{name: "no discount", product: Product{Price: 89.99}, want: "89.99"},
		{name: "quarter off", product: Product{Price: 129.99, Discount: ptr(0.25)}, want: "97.49"},
		{name: "half off", product: Product{Price: 49.99, Discount: &half}, want: "25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.SalePrice().String())
		})
	}
}

func TestHasDiscount(t *testing.T) {
	assert.False(t, Product{}.HasDiscount())
	assert.False(t, Product{Discount: ptr(0)}.HasDiscount())
	assert.True(t, Product{Discount: ptr(0.1)}.HasDiscount())
}

func TestLineTotal(t *testing.T) {
	d := OrderDetail{Quantity: 5, UnitPrice: 199.99}
	assert.Equal(t, "999.95", d.LineTotal().String())
}

func TestRecordIDs(t *testing.T) {
	records := []interface {
		RecordID() (int, bool)
		IDField() string
	}{
		Supplier{SupplierID: 7},
		Product{ProductID: 7},
		Headquarters{HeadquartersID: 7},
		Branch{BranchID: 7},
		Order{OrderID: 7},
		OrderDetail{OrderDetailID: 7},
		Delivery{DeliveryID: 7},
		OrderDetailDelivery{OrderDetailDeliveryID: 7},
	}
	for _, r := range records {
		id, ok := r.RecordID()
		assert.True(t, ok)
		assert.Equal(t, 7, id)

		raw, err := json.Marshal(r)
		require.NoError(t, err)
		var fields map[string]any
		require.NoError(t, json.Unmarshal(raw, &fields))
		assert.EqualValues(t, 7, fields[r.IDField()], "%T id field", r)
	}
}

func ptr(f float64) *float64 { return &f }
