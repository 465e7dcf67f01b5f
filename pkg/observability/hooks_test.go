package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	c := NoopComposeHooks{}
	c.OnComposeStart(ctx, "side-by-side", 3)
	c.OnComposeComplete(ctx, "side-by-side", 3, time.Millisecond, true, nil)

	s := NoopStoreHooks{}
	s.OnGlyphStored(ctx, "ocean_lr_1.svg", 2048)
	s.OnGlyphServed(ctx, "ocean_lr_1.svg", false)

	h := NoopHTTPHooks{}
	h.OnResponse(ctx, "GET", "/gen/{name}", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Compose().(NoopComposeHooks); !ok {
		t.Error("Compose() should return NoopComposeHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customCompose := &testComposeHooks{}
	SetComposeHooks(customCompose)
	if Compose() != customCompose {
		t.Error("SetComposeHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Compose().(NoopComposeHooks); !ok {
		t.Error("Reset() should restore NoopComposeHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testComposeHooks{}
	SetComposeHooks(custom)
	SetComposeHooks(nil)

	if Compose() != custom {
		t.Error("SetComposeHooks(nil) should be ignored")
	}

	Reset()
}

type testComposeHooks struct{ NoopComposeHooks }
type testStoreHooks struct{ NoopStoreHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
