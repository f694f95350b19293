package scope

import (
	"context"
	"testing"
)

func TestPayloadContext(t *testing.T) {
	if _, ok := GetPayloadFromContext(context.Background()); ok {
		t.Fatal("empty context should carry no payload")
	}
	ctx := SetPayloadToContext(context.Background(), Payload{UserID: "u1", OpenID: "o1"})
	p, ok := GetPayloadFromContext(ctx)
	if !ok || p.UserID != "u1" || p.OpenID != "o1" {
		t.Fatalf("unexpected payload %+v ok=%v", p, ok)
	}
	if _, ok := GetPayloadFromContext(SetPayloadToContext(context.Background(), Payload{})); ok {
		t.Fatal("payload without user id should not count")
	}
}
