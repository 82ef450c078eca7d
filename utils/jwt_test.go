package utils

import (
	"testing"
	"time"
)

func TestParseToken(t *testing.T) {
	token, err := GenerateToken(7, AudienceVendor, "s3cret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseToken(token, "s3cret", AudienceVendor)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 7 || claims.Role != AudienceVendor {
		t.Fatalf("claims = %+v", claims)
	}
	if _, err := ParseToken(token, "s3cret", AudienceCustomer, AudienceVendor); err != nil {
		t.Fatalf("multi-audience parse: %v", err)
	}

	if _, err := ParseToken(token, "s3cret", AudienceCustomer); err != ErrInvalidToken {
		t.Fatalf("wrong audience err = %v", err)
	}
	if _, err := ParseToken(token, "other", AudienceVendor); err != ErrInvalidToken {
		t.Fatalf("wrong secret err = %v", err)
	}
	if _, err := ParseToken("not.a.token", "s3cret"); err != ErrInvalidToken {
		t.Fatalf("garbage err = %v", err)
	}

	expired, _ := GenerateToken(7, AudienceVendor, "s3cret", -time.Minute)
	if _, err := ParseToken(expired, "s3cret", AudienceVendor); err != ErrInvalidToken {
		t.Fatalf("expired err = %v", err)
	}
}
