package cli

import "testing"

func TestSemVer(t *testing.T) {
	v, err := SemVer()
	if err != nil {
		t.Fatalf("tool version does not parse: %v", err)
	}
	if v.String() != Version {
		t.Errorf("parsed version wrong. expected=%q, got=%q", Version, v.String())
	}
}

func TestSatisfiesConstraint(t *testing.T) {
	tests := []struct {
		constraint string
		expected   bool
	}{
		{">=0.1.0", true},
		{"<1.0.0", true},
		{">=1.0.0", false},
	}

	for _, tt := range tests {
		ok, err := SatisfiesConstraint(tt.constraint)
		if err != nil {
			t.Errorf("constraint %q failed: %v", tt.constraint, err)
			continue
		}
		if ok != tt.expected {
			t.Errorf("constraint %q wrong. expected=%v, got=%v", tt.constraint, tt.expected, ok)
		}
	}

	if _, err := SatisfiesConstraint("not a constraint"); err == nil {
		t.Error("expected error for malformed constraint")
	}
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version != Version {
		t.Errorf("version wrong. got=%q", info.Version)
	}
	if info.GoVersion == "" || info.Platform == "" || info.Arch == "" {
		t.Errorf("incomplete version info: %+v", info)
	}
}
