package remote_test

import (
	"errors"
	"fmt"
	"testing"

	"alwanstore/internal/remote"
)

func TestIsRLSPolicyError(t *testing.T) {
	positives := []error{
		errors.New(`infinite recursion detected in policy for relation "user_roles"`),
		errors.New("policy for relation products forbids this"),
		errors.New("permission denied for table user_roles"),
		&remote.Error{Status: 500, Message: "Infinite Recursion detected"},
		fmt.Errorf("fetch products: %w", errors.New("user_roles lookup failed")),
	}
	for _, err := range positives {
		if !remote.IsRLSPolicyError(err) {
			t.Errorf("want true for %q", err)
		}
	}

	negatives := []error{
		nil,
		errors.New("network timeout"),
		errors.New("duplicate key value violates unique constraint"),
		&remote.Error{Status: 404, Message: "not found"},
	}
	for _, err := range negatives {
		if remote.IsRLSPolicyError(err) {
			t.Errorf("want false for %v", err)
		}
	}
}

func TestIsNotFound(t *testing.T) {
	if !remote.IsNotFound(&remote.Error{Status: 404, Message: "gone"}) {
		t.Fatal("404 should be not-found")
	}
	if !remote.IsNotFound(&remote.Error{Status: 406, Code: "PGRST116", Message: "no rows"}) {
		t.Fatal("PGRST116 should be not-found")
	}
	if remote.IsNotFound(errors.New("boom")) {
		t.Fatal("plain error is not not-found")
	}
}
