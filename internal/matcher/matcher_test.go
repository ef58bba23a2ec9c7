package matcher

import "testing"

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name string
		stem string
		want string
	}{
		{"No underscore", "  clip  ", "clip"},
		{"Date prefix then spaced title", "20230415_My Show", "My Show"},
		{"Spaced title then suffix", "My Show_raw", "My Show"},
		{"Neither side spaced", "clip_take2", "clip"},
		{"Both sides spaced", "My Show_take two", "My Show"},
		{"Splits on first underscore only", "cam_a_b c", "a_b c"},
		{"Trims the chosen side", "2023_  Spaced Out  ", "Spaced Out"},
		{"Empty stem", "", ""},
		{"Leading underscore", "_My Show", "My Show"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanTitle(tt.stem); got != tt.want {
				t.Errorf("CleanTitle(%q) = %q; want %q", tt.stem, got, tt.want)
			}
		})
	}
}

func TestSearchKey(t *testing.T) {
	tests := []struct {
		name     string
		stem     string
		selfName string
		want     string
	}{
		{"Lowercases", "Clip", "stampname", "clip"},
		{"Strips self name", "Clip stampname", "stampname", "clip"},
		{"Strips self name case-insensitively", "StampName Clip", "stampname", "clip"},
		{"Stem is only the self name", "stampname", "stampname", ""},
		{"Empty self name keeps key", "Clip", "", "clip"},
		{"Uses cleaned title", "20230415_My Show", "stampname", "my show"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SearchKey(tt.stem, tt.selfName); got != tt.want {
				t.Errorf("SearchKey(%q, %q) = %q; want %q", tt.stem, tt.selfName, got, tt.want)
			}
		})
	}
}

func TestContainsSelf(t *testing.T) {
	if !ContainsSelf("my StampName run", "stampname") {
		t.Error("expected self name match")
	}
	if ContainsSelf("clip", "stampname") {
		t.Error("unexpected self name match")
	}
	if ContainsSelf("clip", "") {
		t.Error("empty self name must never match")
	}
}

func TestSplitExt(t *testing.T) {
	tests := []struct {
		name     string
		wantStem string
		wantExt  string
	}{
		{"clip.mp4", "clip", ".mp4"},
		{"archive.tar.MP4", "archive.tar", ".MP4"},
		{"noext", "noext", ""},
		{".mp4", ".mp4", ""},
		{"..hidden.mp4", "..hidden", ".mp4"},
		{"trailing.", "trailing", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, ext := SplitExt(tt.name)
			if stem != tt.wantStem || ext != tt.wantExt {
				t.Errorf("SplitExt(%q) = (%q, %q); want (%q, %q)", tt.name, stem, ext, tt.wantStem, tt.wantExt)
			}
		})
	}
}

func TestMatchLegacy(t *testing.T) {
	tests := []struct {
		name   string
		stem   string
		want   Legacy
		wantOK bool
	}{
		{"Standard", "2023_04-15_MyShow", Legacy{"2023", "04", "15", "MyShow"}, true},
		{"Title with spaces and underscores", "2023_04-15_My Show_take 2", Legacy{"2023", "04", "15", "My Show_take 2"}, true},
		{"Out of range values still match", "2023_13-40_Bad", Legacy{"2023", "13", "40", "Bad"}, true},
		{"Missing title", "2023_04-15_", Legacy{}, false},
		{"Missing trailing underscore", "2023_04-15", Legacy{}, false},
		{"Wrong separators", "2023-04-15_MyShow", Legacy{}, false},
		{"Short month", "2023_4-15_MyShow", Legacy{}, false},
		{"Prefixed", "x2023_04-15_MyShow", Legacy{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchLegacy(tt.stem)
			if ok != tt.wantOK {
				t.Fatalf("MatchLegacy(%q) ok = %v; want %v", tt.stem, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("MatchLegacy(%q) = %+v; want %+v", tt.stem, got, tt.want)
			}
		})
	}
}

func TestMatchLegacy_TitleCleansToRemainder(t *testing.T) {
	for _, title := range []string{"MyShow", "Another Title", "x"} {
		m, ok := MatchLegacy("1999_12-31_" + title)
		if !ok {
			t.Fatalf("no legacy match for title %q", title)
		}
		if got := CleanTitle(m.Title); got != title {
			t.Errorf("CleanTitle(%q) = %q; want %q", m.Title, got, title)
		}
	}
}

func TestFindDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		y, m, d string
		ok      bool
	}{
		{"Hyphenated", "2023-04-15", "2023", "04", "15", true},
		{"Underscored", "2023_04_15", "2023", "04", "15", true},
		{"Spaced", "shot 2023 04 15.mov", "2023", "04", "15", true},
		{"Compact", "VID20230415.mov", "2023", "04", "15", true},
		{"Legacy shape", "2023_04-15", "2023", "04", "15", true},
		{"Mixed separators", "2023-04_15", "2023", "04", "15", true},
		{"First occurrence wins", "20230101 and 20240202", "2023", "01", "01", true},
		{"No date", "cam1.mov", "", "", "", false},
		{"Too short", "2023-04", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m, d, ok := FindDate(tt.in)
			if ok != tt.ok || y != tt.y || m != tt.m || d != tt.d {
				t.Errorf("FindDate(%q) = (%q, %q, %q, %v); want (%q, %q, %q, %v)",
					tt.in, y, m, d, ok, tt.y, tt.m, tt.d, tt.ok)
			}
		})
	}
}
