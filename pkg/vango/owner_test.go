package vango

import "testing"

func TestOwnerDisposeOrder(t *testing.T) {
	root := NewOwner(nil)
	var order []string

	root.OnCleanup(func() { order = append(order, "root-1") })
	root.OnCleanup(func() { order = append(order, "root-2") })

	a := NewOwner(root)
	a.OnCleanup(func() { order = append(order, "a") })
	b := NewOwner(root)
	b.OnCleanup(func() { order = append(order, "b") })

	root.Dispose()

	want := []string{"b", "a", "root-2", "root-1"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if !a.IsDisposed() || !b.IsDisposed() {
		t.Error("children should be disposed with their parent")
	}
}

func TestOwnerDisposeIdempotent(t *testing.T) {
	o := NewOwner(nil)
	calls := 0
	o.OnCleanup(func() { calls++ })

	o.Dispose()
	o.Dispose()

	if calls != 1 {
		t.Errorf("cleanup ran %d times, want 1", calls)
	}
}

func TestOnCleanupAfterDisposeRunsImmediately(t *testing.T) {
	o := NewOwner(nil)
	o.Dispose()

	ran := false
	o.OnCleanup(func() { ran = true })
	if !ran {
		t.Error("Expected cleanup on disposed owner to run immediately")
	}
}

func TestChildDisposeDetachesFromParent(t *testing.T) {
	root := NewOwner(nil)
	child := NewOwner(root)
	NewOwner(root)

	child.Dispose()

	if n := len(root.Children()); n != 1 {
		t.Errorf("root has %d children, want 1", n)
	}
	if child.Parent() != root {
		t.Error("Parent() should still report the original parent")
	}
}

func TestPanickingCleanupDoesNotStopOthers(t *testing.T) {
	o := NewOwner(nil)
	ran := false
	o.OnCleanup(func() { ran = true })
	o.OnCleanup(func() { panic("boom") })

	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
		if !ran {
			t.Error("Expected remaining cleanup to run")
		}
	}()
	o.Dispose()
}

func TestOwnerValues(t *testing.T) {
	root := NewOwner(nil)
	child := NewOwner(root)
	root.SetValue("k", 1)

	if got := child.GetValue("k"); got != 1 {
		t.Errorf("child GetValue = %v, want 1", got)
	}
	child.SetValue("k", 2)
	if got := child.GetValue("k"); got != 2 {
		t.Errorf("child GetValue after shadow = %v, want 2", got)
	}
	if got := root.GetValue("k"); got != 1 {
		t.Errorf("root GetValue = %v, want 1", got)
	}
	if got := root.GetValue("missing"); got != nil {
		t.Errorf("missing key = %v, want nil", got)
	}

	root.Dispose()
	if got := root.GetValue("k"); got != nil {
		t.Errorf("value after dispose = %v, want nil", got)
	}
}
