package lattice

import "testing"

func TestVersion_IsSemver(t *testing.T) {
	if !VersionIsSemver() {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestVersionTag_PrefixesV(t *testing.T) {
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("version tag: got %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.3.0", want: true},
		{version: "1.2.3-rc.1", want: true},
		{version: "2.0.0+build.12", want: true},
		{version: "v0.3.0", want: false},
		{version: "0.3", want: false},
		{version: "00.3.0", want: false},
	}

	for _, tc := range cases {
		got := IsSemver(tc.version)
		if got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}
