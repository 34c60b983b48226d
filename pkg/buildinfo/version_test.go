package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	i := Get()
	s := String()
	for _, want := range []string{"version: " + i.Version, "commit: " + i.Commit, "built: " + i.Date} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestTemplate(t *testing.T) {
	if !strings.HasPrefix(Template(), "{{.Name}} version "+Get().Version) {
		t.Errorf("Template() = %q", Template())
	}
}

func TestMerge(t *testing.T) {
	unstamped := Info{Version: "dev", Commit: "none", Date: "unknown"}
	installed := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	}

	tests := []struct {
		name string
		info Info
		bi   *debug.BuildInfo
		want Info
	}{
		{
			name: "go install fills unstamped fields",
			info: unstamped,
			bi:   installed,
			want: Info{Version: "v0.3.0", Commit: "0123456789ab", Date: "2026-10-01T12:00:00Z"},
		},
		{
			name: "stamped fields win",
			info: Info{Version: "v1.0.0", Commit: "abc1234", Date: "2026-09-30T00:00:00Z"},
			bi:   installed,
			want: Info{Version: "v1.0.0", Commit: "abc1234", Date: "2026-09-30T00:00:00Z"},
		},
		{
			name: "devel build keeps dev",
			info: unstamped,
			bi:   &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: unstamped,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := merge(tt.info, tt.bi); got != tt.want {
				t.Errorf("merge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
