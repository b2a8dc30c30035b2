package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestUserIDRoundTrip(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithUserID(context.Background(), id)

	got, ok := UserIDFromCtx(ctx)
	if !ok {
		t.Fatal("UserIDFromCtx returned ok=false for a populated context")
	}
	if got != id {
		t.Errorf("UserIDFromCtx = %s, want %s", got, id)
	}
}

func TestUserIDFromCtx_Missing(t *testing.T) {
	t.Parallel()

	got, ok := UserIDFromCtx(context.Background())
	if ok {
		t.Error("UserIDFromCtx returned ok=true for an empty context")
	}
	if got != uuid.Nil {
		t.Errorf("UserIDFromCtx = %s, want uuid.Nil", got)
	}
}

func TestUserIDFromCtx_NilUUID(t *testing.T) {
	t.Parallel()

	ctx := WithUserID(context.Background(), uuid.Nil)
	if _, ok := UserIDFromCtx(ctx); ok {
		t.Error("UserIDFromCtx returned ok=true for uuid.Nil")
	}
}
