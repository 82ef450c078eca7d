package controllers

import (
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/resp"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/services"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"

	"github.com/gin-gonic/gin"
)

const defaultFeedbackPageSize = 10

type feedbackResponseRequest struct {
	Response string `json:"response"`
}

type FeedbackController struct {
	Feedback *services.FeedbackService
}

func NewFeedbackController(feedback *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Feedback: feedback}
}

// POST /api/feedback/orders/:orderId
func (fc *FeedbackController) Create(c *gin.Context) {
	orderID, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	var req services.CreateFeedbackInput
	if !bindJSON(c, &req) {
		return
	}
	fb, err := fc.Feedback.Create(c.Request.Context(), utils.CurrentUserID(c), orderID, req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "Thank you for your feedback!", "feedback": fb})
}

// GET /api/feedback/user?page=&limit=
func (fc *FeedbackController) ListForCustomer(c *gin.Context) {
	page, limit := utils.PageParams(c.Query("page"), c.Query("limit"), defaultFeedbackPageSize)
	res, err := fc.Feedback.ListForCustomer(c.Request.Context(), utils.CurrentUserID(c), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"feedbacks": res.Feedbacks, "pagination": pageJSON(res.Pagination, "total_feedbacks")})
}

// GET /api/feedback/vendors/:vendorId
func (fc *FeedbackController) ListForVendor(c *gin.Context) {
	vendorID, ok := parseIDParam(c, "vendorId")
	if !ok {
		return
	}
	rows, err := fc.Feedback.ListForVendor(c.Request.Context(), vendorID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"feedbacks": rows})
}

// PATCH /api/feedback/:feedbackId/response
func (fc *FeedbackController) Respond(c *gin.Context) {
	feedbackID, ok := parseIDParam(c, "feedbackId")
	if !ok {
		return
	}
	var req feedbackResponseRequest
	if !bindJSON(c, &req) {
		return
	}
	fb, err := fc.Feedback.Respond(c.Request.Context(), utils.CurrentUserID(c), feedbackID, req.Response)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Response saved", "feedback": fb})
}
