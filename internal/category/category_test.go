package category

import "testing"

func TestAll_FixedSet(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("All() returned %d categories, expected 6", len(all))
	}

	expected := []string{"initiative", "quality", "throughput", "collaboration", "leadership", "other"}
	for i, id := range expected {
		if all[i].ID != id {
			t.Errorf("All()[%d].ID = %q, expected %q", i, all[i].ID, id)
		}
	}
}

func TestWeights(t *testing.T) {
	weights := map[string]int{
		"initiative":    30,
		"quality":       30,
		"throughput":    20,
		"collaboration": 20,
		"leadership":    0,
		"other":         0,
	}

	total := 0
	for _, c := range All() {
		if c.Weight != weights[c.ID] {
			t.Errorf("category %q weight = %d, expected %d", c.ID, c.Weight, weights[c.ID])
		}
		total += c.Weight
	}
	if total != 100 {
		t.Errorf("weighted categories sum to %d, expected 100", total)
	}
}

func TestOf_Known(t *testing.T) {
	c := Of("quality")
	if c.ID != "quality" {
		t.Errorf("Of(quality).ID = %q", c.ID)
	}
	if c.Label != "Quality of Work" {
		t.Errorf("Of(quality).Label = %q", c.Label)
	}
}

func TestOf_UnknownReturnsSentinel(t *testing.T) {
	tests := []string{"", "qualty", "QUALITY", "misc"}
	for _, id := range tests {
		c := Of(id)
		if c.ID != Unknown.ID {
			t.Errorf("Of(%q) = %q, expected the Unknown sentinel", id, c.ID)
		}
	}
}

func TestIsKnown(t *testing.T) {
	for _, c := range All() {
		if !IsKnown(c.ID) {
			t.Errorf("IsKnown(%q) = false", c.ID)
		}
	}
	if IsKnown("unknown") {
		t.Error("IsKnown(unknown) = true, the sentinel is not a loggable category")
	}
	if IsKnown("") {
		t.Error("IsKnown(\"\") = true")
	}
}

func TestWeighted(t *testing.T) {
	weighted := Weighted()
	if len(weighted) != 4 {
		t.Fatalf("Weighted() returned %d categories, expected 4", len(weighted))
	}
	for _, c := range weighted {
		if c.Weight == 0 {
			t.Errorf("Weighted() included zero-weight category %q", c.ID)
		}
	}
}

func TestValues(t *testing.T) {
	expected := []string{"Honesty", "Boldness", "Passion", "Positivity", "Excellence"}
	if len(Values) != len(expected) {
		t.Fatalf("Values has %d items, expected %d", len(Values), len(expected))
	}
	for i, v := range expected {
		if Values[i] != v {
			t.Errorf("Values[%d] = %q, expected %q", i, Values[i], v)
		}
	}
}
