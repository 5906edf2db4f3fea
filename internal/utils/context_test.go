package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-book-catalog/models"
)

func TestGetUserFromContext_Found(t *testing.T) {
	want := models.User{UserID: 42, Username: "alice"}
	ctx := context.WithValue(context.Background(), UserCtxKey, want)

	got, ok := GetUserFromContext(ctx)
	if !ok {
		t.Fatal("expected ok == true")
	}
	if got.UserID != want.UserID || got.Username != want.Username {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	if _, ok := GetUserFromContext(context.Background()); ok {
		t.Error("expected ok == false for empty context")
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")
	if _, ok := GetUserFromContext(ctx); ok {
		t.Error("expected ok == false for wrong value type")
	}
}
