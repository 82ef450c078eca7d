package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/repository"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"
)

const maxFeedbackText = 500

type FeedbackService struct {
	Repo      *repository.FeedbackRepository
	OrderRepo *repository.OrderRepository
}

func NewFeedbackService(repo *repository.FeedbackRepository, orderRepo *repository.OrderRepository) *FeedbackService {
	return &FeedbackService{Repo: repo, OrderRepo: orderRepo}
}

type CreateFeedbackInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type FeedbackPage struct {
	Feedbacks  []FeedbackView
	Pagination utils.Pagination
}

// Create accepts feedback only for the customer's own delivered orders, once.
func (s *FeedbackService) Create(ctx context.Context, customerID, orderID uint, in CreateFeedbackInput) (*FeedbackView, error) {
	const missing = "Order not found or not delivered yet"
	order, err := s.OrderRepo.GetOrderForCustomer(ctx, customerID, orderID)
	if err != nil {
		return nil, notFoundOr(err, missing)
	}
	if order.OrderStatus != entity.OrderDelivered {
		return nil, NotFound(missing)
	}

	exists, err := s.Repo.ExistsForOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, Duplicate("Feedback already submitted")
	}

	if in.Rating < 1 || in.Rating > 5 {
		return nil, Validation("Rating must be between 1 and 5")
	}
	comment := strings.TrimSpace(in.Comment)
	if utf8.RuneCountInString(comment) > maxFeedbackText {
		return nil, Validation("Comment cannot exceed 500 characters")
	}

	fb := entity.Feedback{
		OrderID:    order.ID,
		CustomerID: customerID,
		VendorID:   order.VendorID,
		MenuID:     order.MenuID,
		Rating:     in.Rating,
		Comment:    comment,
	}
	if err := s.Repo.Create(ctx, &fb); err != nil {
		// lost a race with a concurrent submit; the unique index on order_id decides
		if isDuplicateKey(err) {
			return nil, Duplicate("Feedback already submitted")
		}
		return nil, err
	}

	saved, err := s.Repo.GetWithRelations(ctx, fb.ID)
	if err != nil {
		return nil, err
	}
	view := NewFeedbackView(saved)
	return &view, nil
}

func (s *FeedbackService) ListForCustomer(ctx context.Context, customerID uint, page, limit int) (*FeedbackPage, error) {
	rows, total, err := s.Repo.ListForCustomer(ctx, customerID, utils.Offset(page, limit), limit)
	if err != nil {
		return nil, err
	}
	return &FeedbackPage{Feedbacks: feedbackViews(rows), Pagination: utils.NewPagination(page, limit, total)}, nil
}

func (s *FeedbackService) ListForVendor(ctx context.Context, vendorID uint) ([]FeedbackView, error) {
	rows, err := s.Repo.ListForVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return feedbackViews(rows), nil
}

// Respond records the vendor's public reply to a feedback on one of its orders.
func (s *FeedbackService) Respond(ctx context.Context, vendorID, feedbackID uint, response string) (*FeedbackView, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		return nil, Validation("Response is required")
	}
	if utf8.RuneCountInString(response) > maxFeedbackText {
		return nil, Validation("Response cannot exceed 500 characters")
	}

	ok, err := s.Repo.SaveResponse(ctx, vendorID, feedbackID, response, time.Now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFound("Feedback not found")
	}
	saved, err := s.Repo.GetWithRelations(ctx, feedbackID)
	if err != nil {
		return nil, err
	}
	view := NewFeedbackView(saved)
	return &view, nil
}

func feedbackViews(rows []entity.Feedback) []FeedbackView {
	out := make([]FeedbackView, 0, len(rows))
	for i := range rows {
		out = append(out, NewFeedbackView(&rows[i]))
	}
	return out
}
