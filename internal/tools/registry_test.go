package tools

import (
	"context"
	"reflect"
	"testing"
)

type stubTool struct {
	BaseTool
	result Result
}

func newStubTool(name string, params []Parameter, result Result) *stubTool {
	return &stubTool{
		BaseTool: NewBaseTool(name, "stub tool "+name, params),
		result:   result,
	}
}

func (t *stubTool) Execute(ctx context.Context, args map[string]interface{}) Result {
	return t.result
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(newStubTool("a", nil, OK("first"))); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}

	// Re-registering the same name replaces the prior tool
	replacement := newStubTool("a", nil, OK("second"))
	if err := r.Register(replacement); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() after duplicate register = %d, want 1", r.Len())
	}

	got, ok := r.Get("a")
	if !ok {
		t.Fatal("Get(a) not found after re-register")
	}
	if res := got.Execute(context.Background(), nil); res.Data != "second" {
		t.Errorf("re-registered tool data = %v, want %q", res.Data, "second")
	}
}

func TestRegistryRejectsEmptyName(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(newStubTool("", nil, OK(nil))); err == nil {
		t.Error("Register() with empty name should fail")
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register(newStubTool("a", nil, OK(nil)))

	r.Unregister("a")
	if _, ok := r.Get("a"); ok {
		t.Error("Get(a) found after Unregister")
	}

	// Unregistering an absent name is a no-op, not an error
	r.Unregister("never-registered")
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestRegistryListCopyOut(t *testing.T) {
	r := NewRegistry()
	r.Register(newStubTool("a", nil, OK(nil)))

	list := r.List()
	delete(list, "a")

	if _, ok := r.Get("a"); !ok {
		t.Error("mutating List() result affected the registry")
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(newStubTool("zeta", nil, OK(nil)))
	r.Register(newStubTool("alpha", nil, OK(nil)))
	r.Register(newStubTool("mid", nil, OK(nil)))

	got := r.Names()
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistryOnChange(t *testing.T) {
	r := NewRegistry()
	fired := 0
	r.OnChange(func() { fired++ })

	r.Register(newStubTool("a", nil, OK(nil)))
	if fired != 1 {
		t.Errorf("hook fired %d times after Register, want 1", fired)
	}

	r.Unregister("a")
	if fired != 2 {
		t.Errorf("hook fired %d times after Unregister, want 2", fired)
	}

	// No-op unregister must not fire the hook
	r.Unregister("a")
	if fired != 2 {
		t.Errorf("hook fired %d times after no-op Unregister, want 2", fired)
	}
}
