package hash

import (
	"testing"

	"github.com/google/uuid"
)

func TestSha256Hash(t *testing.T) {
	input := "your string here"
	expected := "ebea8483c5b21ae61081786be10f9704ce8975e1e5b505c03f6ab8514ecc5c0c"
	result := Sha256Hash(input)
	if result != expected {
		t.Errorf("expected %s, got %s", expected, result)
	}
}

func TestStableGuid(t *testing.T) {
	first := StableGuid("google_project.dev")

	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("expected a valid GUID, got %s", first)
	}

	if first != StableGuid("google_project.dev") {
		t.Fatalf("the same input must generate the same GUID")
	}

	if first == StableGuid("google_project.prod") {
		t.Fatalf("different inputs should generate different GUIDs")
	}
}

func TestStableNumber(t *testing.T) {
	for _, digits := range []int{1, 12, 30} {
		number := StableNumber("aws_organizations_account.dev", digits)
		if len(number) != digits {
			t.Fatalf("expected %d digits, got %s", digits, number)
		}

		if number[0] == '0' {
			t.Fatalf("number should not start with zero, got %s", number)
		}

		if number != StableNumber("aws_organizations_account.dev", digits) {
			t.Fatalf("the same input must generate the same number")
		}
	}
}
