package controllers

import (
	"strconv"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/middlewares"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/resp"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/services"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"

	"github.com/gin-gonic/gin"
)

const (
	defaultConsumerTrackingLimit = 10
	defaultVendorTrackingLimit   = 20
)

type TrackingController struct {
	Tracking *services.TrackingService
}

func NewTrackingController(tracking *services.TrackingService) *TrackingController {
	return &TrackingController{Tracking: tracking}
}

func queryLimit(c *gin.Context, def int) int {
	_, limit := utils.PageParams("1", c.Query("limit"), def)
	return limit
}

// GET /api/order-tracking/consumer/:orderId
func (tc *TrackingController) ConsumerDetail(c *gin.Context) {
	orderID, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, tracking, err := tc.Tracking.ConsumerDetail(c.Request.Context(), utils.CurrentUserID(c), orderID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order, "tracking": tracking})
}

// GET /api/order-tracking/consumer?status=&limit=
func (tc *TrackingController) ConsumerList(c *gin.Context) {
	orders, err := tc.Tracking.ConsumerList(c.Request.Context(), utils.CurrentUserID(c),
		c.Query("status"), queryLimit(c, defaultConsumerTrackingLimit))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /api/order-tracking/vendor?status=&date=&limit=
func (tc *TrackingController) VendorList(c *gin.Context) {
	day, ok := queryDay(c, "date")
	if !ok {
		return
	}
	orders, err := tc.Tracking.VendorList(c.Request.Context(), utils.CurrentUserID(c),
		c.Query("status"), day, queryLimit(c, defaultVendorTrackingLimit))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// POST /api/order-tracking/vendor/:orderId/update
func (tc *TrackingController) Update(c *gin.Context) {
	defer func() { middlewares.RecordOrderOperation("update_tracking", statusOK(c)) }()

	orderID, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	var req services.TrackingUpdateInput
	if !bindJSON(c, &req) {
		return
	}
	summary, err := tc.Tracking.Upsert(c.Request.Context(), utils.CurrentUserID(c), orderID, req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Order tracking updated successfully", "tracking": summary})
}

// GET /api/order-tracking/live?orderIds=1,2,3
func (tc *TrackingController) Live(c *gin.Context) {
	who := services.Requester{ID: utils.CurrentUserID(c), Role: utils.CurrentRole(c)}
	data, err := tc.Tracking.Live(c.Request.Context(), who, c.Query("orderIds"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("X-Tracking-Count", strconv.Itoa(len(data)))
	resp.OK(c, gin.H{"trackingData": data})
}
