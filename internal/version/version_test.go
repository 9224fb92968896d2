package version

import (
	"runtime/debug"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		info    *debug.BuildInfo
		want    string
	}{
		{"dev build without info", "dev", "", nil, "dev"},
		{"ldflags", "v1.2.0", "abc1234", nil, "v1.2.0 (commit abc1234)"},
		{
			"ldflags win over build info",
			"v1.2.0", "abc1234",
			&debug.BuildInfo{
				Main:     debug.Module{Version: "v0.9.0"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffffffffffffffffffff"}},
			},
			"v1.2.0 (commit abc1234)",
		},
		{
			"go install module version",
			"dev", "",
			&debug.BuildInfo{Main: debug.Module{Version: "v1.3.1"}},
			"v1.3.1",
		},
		{
			"devel main version stays dev",
			"dev", "",
			&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			"dev",
		},
		{
			"vcs revision shortened",
			"dev", "",
			&debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef0123"}},
			},
			"dev (commit 0123456789ab)",
		},
		{
			"dirty tree",
			"dev", "",
			&debug.BuildInfo{
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef0123"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			"dev (commit 0123456789ab-dirty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolve(tt.version, tt.commit, tt.info)
			if got != tt.want {
				t.Errorf("resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFullVersion_UsesLdflags(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version, Commit = "v9.9.9", "deadbee"
	if got := FullVersion(); got != "v9.9.9 (commit deadbee)" {
		t.Errorf("FullVersion() = %q", got)
	}
}
