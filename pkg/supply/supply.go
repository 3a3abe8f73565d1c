// Package supply holds the records served by the cat-tech supply API.
//
// Foreign-key-shaped fields (SupplierID on Product, BranchID on Order, ...)
// are plain numbers: nothing checks that the referenced record exists.
// Status and date fields are free-form strings.
package supply

// Supplier provides products to the company.
type Supplier struct {
	SupplierID    int    `json:"supplierId"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}

// RecordID implements resource.Record.
func (s Supplier) RecordID() (int, bool) { return s.SupplierID, true }

// IDField implements resource.Keyed.
func (Supplier) IDField() string { return "supplierId" }

// Product is an item sold in the storefront.
type Product struct {
	ProductID   int     `json:"productId"`
	SupplierID  int     `json:"supplierId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	SKU         string  `json:"sku"`
	Unit        string  `json:"unit"`
	ImgName     string  `json:"imgName"`
	// Discount is a fraction of Price, 0.25 meaning 25% off. Nil means none.
	Discount *float64 `json:"discount,omitempty"`
}

// RecordID implements resource.Record.
func (p Product) RecordID() (int, bool) { return p.ProductID, true }

// IDField implements resource.Keyed.
func (Product) IDField() string { return "productId" }

// Headquarters is the company head office.
type Headquarters struct {
	HeadquartersID int    `json:"headquartersId"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Address        string `json:"address"`
	ContactPerson  string `json:"contactPerson"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

// RecordID implements resource.Record.
func (h Headquarters) RecordID() (int, bool) { return h.HeadquartersID, true }

// IDField implements resource.Keyed.
func (Headquarters) IDField() string { return "headquartersId" }

// Branch is a store belonging to a headquarters.
type Branch struct {
	BranchID       int    `json:"branchId"`
	HeadquartersID int    `json:"headquartersId"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Address        string `json:"address"`
	ContactPerson  string `json:"contactPerson"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

// RecordID implements resource.Record.
func (b Branch) RecordID() (int, bool) { return b.BranchID, true }

// IDField implements resource.Keyed.
func (Branch) IDField() string { return "branchId" }

// Order is a purchase placed by a branch.
type Order struct {
	OrderID     int    `json:"orderId"`
	BranchID    int    `json:"branchId"`
	OrderDate   string `json:"orderDate"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Status is free text. The storefront uses pending, shipped and cancelled among others.
	Status string `json:"status"`
}

// RecordID implements resource.Record.
func (o Order) RecordID() (int, bool) { return o.OrderID, true }

// IDField implements resource.Keyed.
func (Order) IDField() string { return "orderId" }

// OrderDetail is one product line of an order.
type OrderDetail struct {
	OrderDetailID int     `json:"orderDetailId"`
	OrderID       int     `json:"orderId"`
	ProductID     int     `json:"productId"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	Notes         string  `json:"notes"`
}

// RecordID implements resource.Record.
func (d OrderDetail) RecordID() (int, bool) { return d.OrderDetailID, true }

// IDField implements resource.Keyed.
func (OrderDetail) IDField() string { return "orderDetailId" }

// Delivery is a shipment from a supplier.
type Delivery struct {
	DeliveryID   int    `json:"deliveryId"`
	SupplierID   int    `json:"supplierId"`
	DeliveryDate string `json:"deliveryDate"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	// Status is free text. The storefront uses pending, in-transit and delivered among others.
	Status string `json:"status"`
}

// RecordID implements resource.Record.
func (d Delivery) RecordID() (int, bool) { return d.DeliveryID, true }

// IDField implements resource.Keyed.
func (Delivery) IDField() string { return "deliveryId" }

// OrderDetailDelivery links part of an order line to a delivery.
type OrderDetailDelivery struct {
	OrderDetailDeliveryID int    `json:"orderDetailDeliveryId"`
	OrderDetailID         int    `json:"orderDetailId"`
	DeliveryID            int    `json:"deliveryId"`
	Quantity              int    `json:"quantity"`
	Notes                 string `json:"notes"`
}

// RecordID implements resource.Record.
func (d OrderDetailDelivery) RecordID() (int, bool) { return d.OrderDetailDeliveryID, true }

// IDField implements resource.Keyed.
func (OrderDetailDelivery) IDField() string { return "orderDetailDeliveryId" }
