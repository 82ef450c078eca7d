package services

import (
	"context"
	"strings"
	"testing"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/repository"
)

func TestFeedbackRules(t *testing.T) {
	db := newTestDB(t)
	orders := newOrderSvc(db, nil)
	svc := NewFeedbackService(repository.NewFeedbackRepository(db), repository.NewOrderRepository(db))
	customer := seedCustomer(t, db)
	stranger := seedCustomer(t, db)
	menu := seedMenu(t, db, seedVendor(t, db, true, true).ID, 100, 10)
	order := mustOrder(t, orders, customer.ID, menu, 1)
	ctx := context.Background()

	_, err := svc.Create(ctx, customer.ID, order.ID, CreateFeedbackInput{Rating: 5})
	wantKind(t, err, KindNotFound)

	if _, err := orders.UpdateStatus(ctx, menu.VendorID, order.ID, string(entity.OrderDelivered)); err != nil {
		t.Fatal(err)
	}

	_, err = svc.Create(ctx, stranger.ID, order.ID, CreateFeedbackInput{Rating: 5})
	wantKind(t, err, KindNotFound)
	_, err = svc.Create(ctx, customer.ID, order.ID, CreateFeedbackInput{Rating: 6})
	wantKind(t, err, KindValidation)
	_, err = svc.Create(ctx, customer.ID, order.ID, CreateFeedbackInput{Rating: 4, Comment: strings.Repeat("a", 501)})
	wantKind(t, err, KindValidation)

	fb, err := svc.Create(ctx, customer.ID, order.ID, CreateFeedbackInput{Rating: 4, Comment: "  tasty dal  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if fb.Comment != "tasty dal" || fb.Rating != 4 || fb.Menu == nil {
		t.Fatalf("feedback = %+v", fb)
	}

	_, err = svc.Create(ctx, customer.ID, order.ID, CreateFeedbackInput{Rating: 3})
	wantKind(t, err, KindDuplicate)
	if err.Error() != "Feedback already submitted" {
		t.Fatalf("message = %q", err.Error())
	}

	_, err = svc.Respond(ctx, menu.VendorID, fb.ID, "   ")
	wantKind(t, err, KindValidation)
	_, err = svc.Respond(ctx, menu.VendorID+100, fb.ID, "thanks")
	wantKind(t, err, KindNotFound)
	replied, err := svc.Respond(ctx, menu.VendorID, fb.ID, "Thank you!")
	if err != nil {
		t.Fatal(err)
	}
	if replied.VendorResponse != "Thank you!" || replied.VendorRespondedAt == nil {
		t.Fatalf("response = %+v", replied)
	}

	page, err := svc.ListForCustomer(ctx, customer.ID, 1, 10)
	if err != nil || len(page.Feedbacks) != 1 || page.Pagination.Total != 1 || page.Pagination.TotalPages != 1 {
		t.Fatalf("customer page = %+v, %v", page, err)
	}
	public, err := svc.ListForVendor(ctx, menu.VendorID)
	if err != nil || len(public) != 1 || public[0].Customer == nil {
		t.Fatalf("vendor feedback = %+v, %v", public, err)
	}
}
