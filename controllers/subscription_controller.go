package controllers

import (
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/middlewares"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/resp"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/services"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"

	"github.com/gin-gonic/gin"
)

const defaultVendorSubscriptionLimit = 100

type SubscriptionController struct {
	Subscriptions *services.SubscriptionService
}

func NewSubscriptionController(subs *services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{Subscriptions: subs}
}

// POST /api/subscriptions
func (sc *SubscriptionController) Create(c *gin.Context) {
	defer func() { middlewares.RecordOrderOperation("create_subscription", statusOK(c)) }()

	var req services.CreateSubscriptionInput
	if !bindJSON(c, &req) {
		return
	}
	sub, err := sc.Subscriptions.Create(c.Request.Context(), utils.CurrentUserID(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "Subscription created successfully", "subscription": sub})
}

// GET /api/subscriptions?status=
func (sc *SubscriptionController) ListForCustomer(c *gin.Context) {
	subs, err := sc.Subscriptions.ListForCustomer(c.Request.Context(), utils.CurrentUserID(c), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"subscriptions": subs})
}

// GET /api/subscriptions/vendor?status=&limit=
func (sc *SubscriptionController) ListForVendor(c *gin.Context) {
	subs, err := sc.Subscriptions.ListForVendor(c.Request.Context(), utils.CurrentUserID(c),
		c.Query("status"), queryLimit(c, defaultVendorSubscriptionLimit))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"subscriptions": subs})
}

// PATCH /api/subscriptions/:subscriptionId/status
func (sc *SubscriptionController) UpdateStatus(c *gin.Context) {
	subID, ok := parseIDParam(c, "subscriptionId")
	if !ok {
		return
	}
	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}
	sub, err := sc.Subscriptions.UpdateStatus(c.Request.Context(), utils.CurrentUserID(c), subID, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Subscription status updated successfully", "subscription": sub})
}
