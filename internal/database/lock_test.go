package database

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperty_LockIDIsDeterministic(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("the same parts always map to the same lock", prop.ForAll(
		func(a, b string) bool {
			return LockID(a, b) == LockID(a, b)
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestLockIDSeparatesResources(t *testing.T) {
	if LockID("products", "seed") == LockID("quote_requests", "seed") {
		t.Fatal("distinct resources should not share a lock id")
	}
}
