package api

import (
	"net/http"

	"octosupply/pkg/supply"
)

// Each function below binds one collection route to its API documentation.

// @Summary List deliveries
// @Tags Deliveries
// @Produce json
// @Success 200 {array} supply.Delivery
// @Router /api/deliveries [get]
func listDeliveries(c *collection[supply.Delivery]) http.HandlerFunc { return c.list }

// @Summary Get delivery
// @Tags Deliveries
// @Produce json
// @Param id path int true "Delivery ID"
// @Success 200 {object} supply.Delivery
// @Failure 404 {string} string "Delivery not found"
// @Router /api/deliveries/{id} [get]
func getDelivery(c *collection[supply.Delivery]) http.HandlerFunc { return c.get }

// @Summary Create delivery
// @Description The body is stored exactly as sent. Nothing is validated.
// @Tags Deliveries
// @Accept json
// @Produce json
// @Param record body supply.Delivery true "Delivery"
// @Success 201 {object} supply.Delivery
// @Failure 400 {string} string "Malformed JSON"
// @Router /api/deliveries [post]
func createDelivery(c *collection[supply.Delivery]) http.HandlerFunc { return c.create }

// @Summary Replace delivery
// @Description Replaces the first record with the id by the body, id included.
// @Tags Deliveries
// @Accept json
// @Produce json
// @Param id path int true "Delivery ID"
// @Param record body supply.Delivery true "Delivery"
// @Success 200 {object} supply.Delivery
// @Failure 400 {string} string "Malformed JSON"
// @Failure 404 {string} string "Delivery not found"
// @Router /api/deliveries/{id} [put]
func replaceDelivery(c *collection[supply.Delivery]) http.HandlerFunc { return c.update }

// @Summary Delete delivery
// @Tags Deliveries
// @Param id path int true "Delivery ID"
// @Success 204 "No Content"
// @Failure 404 {string} string "Delivery not found"
// @Router /api/deliveries/{id} [delete]
func deleteDelivery(c *collection[supply.Delivery]) http.HandlerFunc { return c.remove }

func deliveryRoutes(c *collection[supply.Delivery]) routes {
	return routes{
		list:   listDeliveries(c),
		get:    getDelivery(c),
		create: createDelivery(c),
		update: replaceDelivery(c),
		remove: deleteDelivery(c),
	}
}

// @Summary List order detail deliveries
// @Tags OrderDetailDeliveries
// @Produce json
// @Success 200 {array} supply.OrderDetailDelivery
// @Router /api/order-detail-deliveries [get]
func listOrderDetailDeliveries(c *collection[supply.OrderDetailDelivery]) http.HandlerFunc { return c.list }

// @Summary Get order detail delivery
// @Tags OrderDetailDeliveries
// @Produce json
// @Param id path int true "Order detail delivery ID"
// @Success 200 {object} supply.OrderDetailDelivery
// @Failure 404 {string} string "Order detail delivery not found"
// @Router /api/order-detail-deliveries/{id} [get]
func getOrderDetailDelivery(c *collection[supply.OrderDetailDelivery]) http.HandlerFunc { return c.get }

// @Summary Create order detail delivery
// @Description The body is stored exactly as sent. Nothing is validated.
// @Tags OrderDetailDeliveries
// @Accept json
// @Produce json
// @Param record body supply.OrderDetailDelivery true "Order detail delivery"
// @Success 201 {object} supply.OrderDetailDelivery
// @Failure 400 {string} string "Malformed JSON"
// @Router /api/order-detail-deliveries [post]
func createOrderDetailDelivery(c *collection[supply.OrderDetailDelivery]) http.HandlerFunc { return c.create }

// @Summary Replace order detail delivery
// @Description Replaces the first record with the id by the body, id included.
// @Tags OrderDetailDeliveries
// @Accept json
// @Produce json
// @Param id path int true "Order detail delivery ID"
// @Param record body supply.OrderDetailDelivery true "Order detail delivery"
// @Success 200 {object} supply.OrderDetailDelivery
// @Failure 400 {string} string "Malformed JSON"
// @Failure 404 {string} string "Order detail delivery not found"
// @Router /api/order-detail-deliveries/{id} [put]
func replaceOrderDetailDelivery(c *collection[supply.OrderDetailDelivery]) http.HandlerFunc { return c.update }

// @Summary Delete order detail delivery
// @Tags OrderDetailDeliveries
// @Param id path int true "Order detail delivery ID"
// @Success 204 "No Content"
// @Failure 404 {string} string "Order detail delivery not found"
// @Router /api/order-detail-deliveries/{id} [delete]
func deleteOrderDetailDelivery(c *collection[supply.OrderDetailDelivery]) http.HandlerFunc { return c.remove }

func orderDetailDeliveryRoutes(c *collection[supply.OrderDetailDelivery]) routes {
	return routes{
		list:   listOrderDetailDeliveries(c),
		get:    getOrderDetailDelivery(c),
		create: createOrderDetailDelivery(c),
		update: replaceOrderDetailDelivery(c),
		remove: deleteOrderDetailDelivery(c),
	}
}

// @Summary List products
// @Tags Products
// @Produce json
// @Success 200 {array} supply.Product
// @Router /api/products [get]
func listProducts(c *collection[supply.Product]) http.HandlerFunc { return c.list }

// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} supply.Product
// @Failure 404 {string} string "Product not found"
// @Router /api/products/{id} [get]
func getProduct(c *collection[supply.Product]) http.HandlerFunc { return c.get }

// @Summary Create product
// @Description The body is stored exactly as sent. Nothing is validated.
// @Tags Products
// @Accept json
// @Produce json
// @Param record body supply.Product true "Product"
// @Success 201 {object} supply.Product
// @Failure 400 {string} string "Malformed JSON"
// @Router /api/products [post]
func createProduct(c *collection[supply.Product]) http.HandlerFunc { return c.create }

// @Summary Replace product
// @Description Replaces the first record with the id by the body, id included.
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param record body supply.Product true "Product"
// @Success 200 {object} supply.Product
// @Failure 400 {string} string "Malformed JSON"
// @Failure 404 {string} string "Product not found"
// @Router /api/products/{id} [put]
func replaceProduct(c *collection[supply.Product]) http.HandlerFunc { return c.update }

// @Summary Delete product
// @Tags Products
// @Param id path int true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {string} string "Product not found"
// @Router /api/products/{id} [delete]
func deleteProduct(c *collection[supply.Product]) http.HandlerFunc { return c.remove }

func productRoutes(c *collection[supply.Product]) routes {
	return routes{
		list:   listProducts(c),
		get:    getProduct(c),
		create: createProduct(c),
		update: replaceProduct(c),
		remove: deleteProduct(c),
	}
}

// @Summary List order details
// @Tags OrderDetails
// @Produce json
// @Success 200 {array} supply.OrderDetail
// @Router /api/order-details [get]
func listOrderDetails(c *collection[supply.OrderDetail]) http.HandlerFunc { return c.list }

// @Summary Get order detail
// @Tags OrderDetails
// @Produce json
// @Param id path int true "Order detail ID"
// @Success 200 {object} supply.OrderDetail
// @Failure 404 {string} string "Order detail not found"
// @Router /api/order-details/{id} [get]
func getOrderDetail(c *collection[supply.OrderDetail]) http.HandlerFunc { return c.get }

// @Summary Create order detail
// @Description The body is stored exactly as sent. Nothing is validated.
// @Tags OrderDetails
// @Accept json
// @Produce json
// @Param record body supply.OrderDetail true "Order detail"
// @Success 201 {object} supply.OrderDetail
// @Failure 400 {string} string "Malformed JSON"
// @Router /api/order-details [post]
func createOrderDetail(c *collection[supply.OrderDetail]) http.HandlerFunc { return c.create }

// @Summary Replace order detail
// @Description Replaces the first record with the id by the body, id included.
// @Tags OrderDetails
// @Accept json
// @Produce json
// @Param id path int true "Order detail ID"
// @Param record body supply.OrderDetail true "Order detail"
// @Success 200 {object} supply.OrderDetail
// @Failure 400 {string} string "Malformed JSON"
// @Failure 404 {string} string "Order detail not found"
// @Router /api/order-details/{id} [put]
func replaceOrderDetail(c *collection[supply.OrderDetail]) http.HandlerFunc { return c.update }

// @Summary Delete order detail
// @Tags OrderDetails
// @Param id path int true "Order detail ID"
// @Success 204 "No Content"
// @Failure 404 {string} string "Order detail not found"
// @Router /api/order-details/{id} [delete]
func deleteOrderDetail(c *collection[supply.OrderDetail]) http.HandlerFunc { return c.remove }

func orderDetailRoutes(c *collection[supply.OrderDetail]) routes {
	return routes{
		list:   listOrderDetails(c),
		get:    getOrderDetail(c),
		create: createOrderDetail(c),
		update: replaceOrderDetail(c),
		remove: deleteOrderDetail(c),
	}
}

// @Summary List orders
// @Tags Orders
// @Produce json
// @Success 200 {array} supply.Order
// @Router /api/orders [get]
func listOrders(c *collection[supply.Order]) http.HandlerFunc { return c.list }

// @Summary Get order
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} supply.Order
// @Failure 404 {string} string "Order not found"
// @Router /api/orders/{id} [get]
func getOrder(c *collection[supply.Order]) http.HandlerFunc { return c.get }

// @Summary Create order
// @Description The body is stored exactly as sent. Nothing is validated.
// @Tags Orders
// @Accept json
// @Produce json
// @Param record body supply.Order true "Order"
// @Success 201 {object} supply.Order
// @Failure 400 {string} string "Malformed JSON"
// @Router /api/orders [post]
func createOrder(c *collection[supply.Order]) http.HandlerFunc { return c.create }

// @Summary Replace order
// @Description Replaces the first record with the id by the body, id included.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param record body supply.Order true "Order"
// @Success 200 {object} supply.Order
// @Failure 400 {string} string "Malformed JSON"
// @Failure 404 {string} string "Order not found"
// @Router /api/orders/{id} [put]
func replaceOrder(c *collection[supply.Order]) http.HandlerFunc { return c.update }

// @Summary Delete order
// @Tags Orders
// @Param id path int true "Order ID"
// @Success 204 "No Content"
// @Failure 404 {string} string "Order not found"
// @Router /api/orders/{id} [delete]
func deleteOrder(c *collection[supply.Order]) http.HandlerFunc { return c.remove }

func orderRoutes(c *collection[supply.Order]) routes {
	return routes{
		list:   listOrders(c),
		get:    getOrder(c),
		create: createOrder(c),
		update: replaceOrder(c),
		remove: deleteOrder(c),
	}
}

// @Summary List branches
// @Tags Branches
// @Produce json
// @Success 200 {array} supply.Branch
// @Router /api/branches [get]
func listBranches(c *collection[supply.Branch]) http.HandlerFunc { return c.list }

// @Summary Get branch
// @Tags Branches
// @Produce json
// @Param id path int true "Branch ID"
// @Success 200 {object} supply.Branch
// @Failure 404 {string} string "Branch not found"
// @Router /api/branches/{id} [get]
func getBranch(c *collection[supply.Branch]) http.HandlerFunc { return c.get }

// @Summary Create branch
// @Description The body is stored exactly as sent. Nothing is validated.
// @Tags Branches
// @Accept json
// @Produce json
// @Param record body supply.Branch true "Branch"
// @Success 201 {object} supply.Branch
// @Failure 400 {string} string "Malformed JSON"
// @Router /api/branches [post]
func createBranch(c *collection[supply.Branch]) http.HandlerFunc { return c.create }

// @Summary Replace branch
// @Description Replaces the first record with the id by the body, id included.
// @Tags Branches
// @Accept json
// @Produce json
// @Param id path int true "Branch ID"
// @Param record body supply.Branch true "Branch"
// @Success 200 {object} supply.Branch
// @Failure 400 {string} string "Malformed JSON"
// @Failure 404 {string} string "Branch not found"
// @Router /api/branches/{id} [put]
func replaceBranch(c *collection[supply.Branch]) http.HandlerFunc { return c.update }

// @Summary Delete branch
// @Tags Branches
// @Param id path int true "Branch ID"
// @Success 204 "No Content"
// @Failure 404 {string} string "Branch not found"
// @Router /api/branches/{id} [delete]
func deleteBranch(c *collection[supply.Branch]) http.HandlerFunc { return c.remove }

func branchRoutes(c *collection[supply.Branch]) routes {
	return routes{
		list:   listBranches(c),
		get:    getBranch(c),
		create: createBranch(c),
		update: replaceBranch(c),
		remove: deleteBranch(c),
	}
}

// @Summary List headquarters
// @Tags Headquarters
// @Produce json
// @Success 200 {array} supply.Headquarters
// @Router /api/headquarters [get]
func listHeadquarters(c *collection[supply.Headquarters]) http.HandlerFunc { return c.list }

// @Summary Get headquarters
// @Tags Headquarters
// @Produce json
// @Param id path int true "Headquarters ID"
// @Success 200 {object} supply.Headquarters
// @Failure 404 {string} string "Headquarters not found"
// @Router /api/headquarters/{id} [get]
func getHeadquarters(c *collection[supply.Headquarters]) http.HandlerFunc { return c.get }

// @Summary Create headquarters
// @Description The body is stored exactly as sent. Nothing is validated.
// @Tags Headquarters
// @Accept json
// @Produce json
// @Param record body supply.Headquarters true "Headquarters"
// @Success 201 {object} supply.Headquarters
// @Failure 400 {string} string "Malformed JSON"
// @Router /api/headquarters [post]
func createHeadquarters(c *collection[supply.Headquarters]) http.HandlerFunc { return c.create }

// @Summary Replace headquarters
// @Description Replaces the first record with the id by the body, id included.
// @Tags Headquarters
// @Accept json
// @Produce json
// @Param id path int true "Headquarters ID"
// @Param record body supply.Headquarters true "Headquarters"
// @Success 200 {object} supply.Headquarters
// @Failure 400 {string} string "Malformed JSON"
// @Failure 404 {string} string "Headquarters not found"
// @Router /api/headquarters/{id} [put]
func replaceHeadquarters(c *collection[supply.Headquarters]) http.HandlerFunc { return c.update }

// @Summary Delete headquarters
// @Tags Headquarters
// @Param id path int true "Headquarters ID"
// @Success 204 "No Content"
// @Failure 404 {string} string "Headquarters not found"
// @Router /api/headquarters/{id} [delete]
func deleteHeadquarters(c *collection[supply.Headquarters]) http.HandlerFunc { return c.remove }

func headquartersRoutes(c *collection[supply.Headquarters]) routes {
	return routes{
		list:   listHeadquarters(c),
		get:    getHeadquarters(c),
		create: createHeadquarters(c),
		update: replaceHeadquarters(c),
		remove: deleteHeadquarters(c),
	}
}

// @Summary List suppliers
// @Tags Suppliers
// @Produce json
// @Success 200 {array} supply.Supplier
// @Router /api/suppliers [get]
func listSuppliers(c *collection[supply.Supplier]) http.HandlerFunc { return c.list }

// @Summary Get supplier
// @Tags Suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} supply.Supplier
// @Failure 404 {string} string "Supplier not found"
// @Router /api/suppliers/{id} [get]
func getSupplier(c *collection[supply.Supplier]) http.HandlerFunc { return c.get }

// @Summary Create supplier
// @Description The body is stored exactly as sent. Nothing is validated.
// @Tags Suppliers
// @Accept json
// @Produce json
// @Param record body supply.Supplier true "Supplier"
// @Success 201 {object} supply.Supplier
// @Failure 400 {string} string "Malformed JSON"
// @Router /api/suppliers [post]
func createSupplier(c *collection[supply.Supplier]) http.HandlerFunc { return c.create }

// @Summary Replace supplier
// @Description Replaces the first record with the id by the body, id included.
// @Tags Suppliers
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param record body supply.Supplier true "Supplier"
// @Success 200 {object} supply.Supplier
// @Failure 400 {string} string "Malformed JSON"
// @Failure 404 {string} string "Supplier not found"
// @Router /api/suppliers/{id} [put]
func replaceSupplier(c *collection[supply.Supplier]) http.HandlerFunc { return c.update }

// @Summary Delete supplier
// @Tags Suppliers
// @Param id path int true "Supplier ID"
// @Success 204 "No Content"
// @Failure 404 {string} string "Supplier not found"
// @Router /api/suppliers/{id} [delete]
func deleteSupplier(c *collection[supply.Supplier]) http.HandlerFunc { return c.remove }

func supplierRoutes(c *collection[supply.Supplier]) routes {
	return routes{
		list:   listSuppliers(c),
		get:    getSupplier(c),
		create: createSupplier(c),
		update: replaceSupplier(c),
		remove: deleteSupplier(c),
	}
}
