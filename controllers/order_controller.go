package controllers

import (
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/middlewares"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/resp"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/services"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"

	"github.com/gin-gonic/gin"
)

const defaultOrderPageSize = 10

type statusRequest struct {
	Status string `json:"status"`
}

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	defer func() { middlewares.RecordOrderOperation("create_order", statusOK(c)) }()

	var req services.CreateOrderInput
	if !bindJSON(c, &req) {
		return
	}
	order, err := oc.Orders.Create(c.Request.Context(), utils.CurrentUserID(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "Order placed successfully", "order": order})
}

// GET /api/orders?status=&page=&limit=
func (oc *OrderController) ListForCustomer(c *gin.Context) {
	page, limit := utils.PageParams(c.Query("page"), c.Query("limit"), defaultOrderPageSize)
	res, err := oc.Orders.ListForCustomer(c.Request.Context(), utils.CurrentUserID(c), c.Query("status"), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": res.Orders, "pagination": pageJSON(res.Pagination, "total_orders")})
}

// GET /api/orders/vendor?status=&page=&limit=
func (oc *OrderController) ListForVendor(c *gin.Context) {
	page, limit := utils.PageParams(c.Query("page"), c.Query("limit"), defaultOrderPageSize)
	res, err := oc.Orders.ListForVendor(c.Request.Context(), utils.CurrentUserID(c), c.Query("status"), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": res.Orders, "pagination": pageJSON(res.Pagination, "total_orders")})
}

// PATCH /api/orders/:orderId/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	defer func() { middlewares.RecordOrderOperation("update_order_status", statusOK(c)) }()

	orderID, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := oc.Orders.UpdateStatus(c.Request.Context(), utils.CurrentUserID(c), orderID, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Order status updated successfully", "order": order})
}
