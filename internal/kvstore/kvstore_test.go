package kvstore_test

import (
	"context"
	"testing"

	"github.com/wasimadildev/begded-planner/internal/kvstore"
	"github.com/wasimadildev/begded-planner/internal/testutil"
)

// exerciseStore runs the get/set/remove contract against any Store.
func exerciseStore(t *testing.T, s kvstore.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		v, found, err := s.Get(ctx, "absent")
		testutil.AssertNoError(t, err)
		if found || v != "" {
			t.Errorf("expected not found, got %q (found=%v)", v, found)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		testutil.AssertNoError(t, s.Set(ctx, "savingsGoals", `[{"id":"1"}]`))
		v, found, err := s.Get(ctx, "savingsGoals")
		testutil.AssertNoError(t, err)
		if !found || v != `[{"id":"1"}]` {
			t.Errorf("unexpected value %q (found=%v)", v, found)
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		testutil.AssertNoError(t, s.Set(ctx, "savingsGoals", `[]`))
		v, _, err := s.Get(ctx, "savingsGoals")
		testutil.AssertNoError(t, err)
		if v != `[]` {
			t.Errorf("expected last write to win, got %q", v)
		}
	})

	t.Run("remove", func(t *testing.T) {
		testutil.AssertNoError(t, s.Remove(ctx, "savingsGoals"))
		_, found, err := s.Get(ctx, "savingsGoals")
		testutil.AssertNoError(t, err)
		if found {
			t.Error("expected key to be gone")
		}
	})

	t.Run("remove missing is safe", func(t *testing.T) {
		testutil.AssertNoError(t, s.Remove(ctx, "never-set"))
	})
}

func TestMemory(t *testing.T) {
	exerciseStore(t, kvstore.NewMemory())
}

func TestGormStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	exerciseStore(t, kvstore.NewGormStore(db))
}

func TestNamespaced(t *testing.T) {
	ctx := context.Background()
	inner := kvstore.NewMemory()
	alice := kvstore.Namespaced(inner, "user:alice:")
	bob := kvstore.Namespaced(inner, "user:bob:")

	testutil.AssertNoError(t, alice.Set(ctx, "savingsGoals", "a"))
	testutil.AssertNoError(t, bob.Set(ctx, "savingsGoals", "b"))

	if v, _, _ := alice.Get(ctx, "savingsGoals"); v != "a" {
		t.Errorf("alice sees %q", v)
	}
	if v, _, _ := bob.Get(ctx, "savingsGoals"); v != "b" {
		t.Errorf("bob sees %q", v)
	}
	if v, found, _ := inner.Get(ctx, "user:alice:savingsGoals"); !found || v != "a" {
		t.Errorf("expected prefixed key in backend, got %q (found=%v)", v, found)
	}
	if inner.Len() != 2 {
		t.Errorf("expected 2 keys in backend, got %d", inner.Len())
	}

	testutil.AssertNoError(t, alice.Remove(ctx, "savingsGoals"))
	if _, found, _ := bob.Get(ctx, "savingsGoals"); !found {
		t.Error("removing alice's key must not touch bob's")
	}
}
