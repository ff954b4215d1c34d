package data

import "testing"

func TestLoadDemos(t *testing.T) {
	demos, err := LoadDemos()
	if err != nil {
		t.Fatalf("LoadDemos failed: %v", err)
	}
	if len(demos) == 0 {
		t.Fatal("No demos loaded")
	}

	seen := make(map[string]bool)
	for _, demo := range demos {
		if demo.ID == "" || demo.Name == "" {
			t.Errorf("Demo %+v missing id or name", demo)
		}
		if seen[demo.ID] {
			t.Errorf("Duplicate demo id %q", demo.ID)
		}
		seen[demo.ID] = true

		if len(demo.Grid) == 0 {
			t.Errorf("Demo %q has an empty grid", demo.ID)
			continue
		}
		width := len(demo.Grid[0])
		for r, row := range demo.Grid {
			if len(row) != width {
				t.Errorf("Demo %q row %d has width %d, want %d", demo.ID, r, len(row), width)
			}
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load[DemosFile]("nope.json"); err == nil {
		t.Error("Load of missing file should fail")
	}
}
