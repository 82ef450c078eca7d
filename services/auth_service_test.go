package services

import (
	"context"
	"testing"
	"time"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/configs"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/repository"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"
)

const testSecret = "test-secret"

func TestAuthCustomerAndVendor(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), repository.NewVendorRepository(db), repository.NewAdminRepository(db), testSecret, time.Hour)
	ctx := context.Background()

	token, user, err := svc.RegisterUser(ctx, RegisterUserInput{Username: "asha", Email: "Asha@Example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("register user: %v", err)
	}
	if user.Email != "asha@example.com" {
		t.Fatalf("email not normalized: %s", user.Email)
	}
	claims, err := utils.ParseToken(token, testSecret, utils.AudienceCustomer)
	if err != nil || claims.UserID != user.ID {
		t.Fatalf("customer token: %+v, %v", claims, err)
	}
	if _, err := utils.ParseToken(token, testSecret, utils.AudienceVendor); err == nil {
		t.Fatal("customer token accepted as vendor token")
	}

	_, _, err = svc.RegisterUser(ctx, RegisterUserInput{Username: "asha", Email: "other@example.com", Password: "secret1"})
	wantKind(t, err, KindDuplicate)
	_, _, err = svc.RegisterUser(ctx, RegisterUserInput{Username: "bob", Email: "bob@example.com", Password: "123"})
	wantKind(t, err, KindValidation)

	if _, _, err := svc.LoginUser(ctx, "asha", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	_, _, err = svc.LoginUser(ctx, "asha", "wrong")
	wantKind(t, err, KindUnauthorized)
	_, _, err = svc.LoginUser(ctx, "nobody", "secret1")
	wantKind(t, err, KindUnauthorized)

	vin := RegisterVendorInput{
		Username: "annapurna", Email: "kitchen@example.com", BusinessName: "Annapurna",
		Address: "Dadar", PhoneNumber: "9333333333", LicenseNumber: "FSSAI-1", Password: "secret1",
	}
	_, vendor, err := svc.RegisterVendor(ctx, vin)
	if err != nil {
		t.Fatalf("register vendor: %v", err)
	}
	if vendor.IsVerified || !vendor.IsActive {
		t.Fatalf("new vendor flags = verified %v active %v", vendor.IsVerified, vendor.IsActive)
	}
	dup := vin
	dup.Username, dup.Email = "other", "other@example.com"
	_, _, err = svc.RegisterVendor(ctx, dup)
	wantKind(t, err, KindDuplicate)

	for _, id := range []string{"annapurna", "kitchen@example.com", "FSSAI-1"} {
		if _, _, err := svc.LoginVendor(ctx, id, "secret1"); err != nil {
			t.Fatalf("vendor login with %q: %v", id, err)
		}
	}
}

func TestAuthAdminAndVendorFlags(t *testing.T) {
	db := newTestDB(t)
	cfg := &configs.Config{AdminUsername: "root", AdminPassword: "hunter22"}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		t.Fatal(err)
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	svc := NewAuthService(repository.NewUserRepository(db), repository.NewVendorRepository(db), repository.NewAdminRepository(db), testSecret, time.Hour)
	ctx := context.Background()

	token, err := svc.LoginAdmin(ctx, "root", "hunter22")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if _, err := utils.ParseToken(token, testSecret, utils.AudienceAdmin); err != nil {
		t.Fatalf("admin token: %v", err)
	}
	_, err = svc.LoginAdmin(ctx, "root", "nope")
	wantKind(t, err, KindUnauthorized)

	vendors := NewVendorService(repository.NewVendorRepository(db))
	v := seedVendor(t, db, false, true)
	got, err := vendors.SetFlags(ctx, v.ID, VendorFlagsInput{IsVerified: boolPtr(true)})
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsVerified || !got.IsActive {
		t.Fatalf("flags = %+v", got)
	}
	_, err = vendors.SetFlags(ctx, v.ID, VendorFlagsInput{})
	wantKind(t, err, KindValidation)
	_, err = vendors.SetFlags(ctx, 9999, VendorFlagsInput{IsActive: boolPtr(false)})
	wantKind(t, err, KindNotFound)
}
