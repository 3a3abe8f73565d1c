package api

import (
	"octosupply/pkg/resource"
	"octosupply/pkg/resource/memory"
	"octosupply/pkg/supply"
)

// NewMemoryStores returns in-process repositories holding seed. It panics if
// a seed record cannot be encoded.
func NewMemoryStores(seed supply.Seed) Stores {
	return Stores{
		Suppliers:             memory.New(resource.MustDocuments(seed.Suppliers)),
		Products:              memory.New(resource.MustDocuments(seed.Products)),
		Headquarters:          memory.New(resource.MustDocuments(seed.Headquarters)),
		Branches:              memory.New(resource.MustDocuments(seed.Branches)),
		Orders:                memory.New(resource.MustDocuments(seed.Orders)),
		OrderDetails:          memory.New(resource.MustDocuments(seed.OrderDetails)),
		Deliveries:            memory.New(resource.MustDocuments(seed.Deliveries)),
		OrderDetailDeliveries: memory.New(resource.MustDocuments(seed.OrderDetailDeliveries)),
	}
}
