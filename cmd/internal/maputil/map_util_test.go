package maputil

import "testing"

func TestMergeTags(t *testing.T) {
	base := map[string]string{"Purpose": "landing-zone", "Environment": "shared"}
	merged := MergeTags(base, map[string]string{"Environment": "dev"})

	if merged["Environment"] != "dev" || merged["Purpose"] != "landing-zone" {
		t.Fatalf("unexpected tags %v", merged)
	}

	if base["Environment"] != "shared" {
		t.Fatal("the base map should not have been modified")
	}
}
