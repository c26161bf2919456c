package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"standup/internal/config"
)

func TestCollectRepoPaths(t *testing.T) {
	base := t.TempDir()
	api := filepath.Join(base, "api")
	worker := filepath.Join(base, "worker")

	tests := []struct {
		name     string
		cfg      config.Config
		cliRepos []string
		want     []string
	}{
		{
			name:     "cli repos win over config",
			cfg:      config.Config{Repos: []string{worker}},
			cliRepos: []string{api},
			want:     []string{api},
		},
		{
			name: "config repos used when no flags",
			cfg:  config.Config{Repos: []string{api, worker}},
			want: []string{api, worker},
		},
		{
			name:     "duplicates collapse case-insensitively",
			cliRepos: []string{api, strings.ToUpper(api), worker},
			want:     []string{api, worker},
		},
		{
			name:     "order is first-seen",
			cliRepos: []string{worker, api, worker},
			want:     []string{worker, api},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectRepoPaths(tt.cfg, tt.cliRepos)

			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d paths, got %d: %v", len(tt.want), len(got), got)
			}
			for i, want := range tt.want {
				if got[i] != want {
					t.Errorf("Path %d: expected %s, got %s", i, want, got[i])
				}
			}
		})
	}
}

func TestCollectRepoPaths_DefaultsToCwd(t *testing.T) {
	got := collectRepoPaths(config.Config{}, nil)

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get cwd: %v", err)
	}

	if len(got) != 1 || got[0] != cwd {
		t.Errorf("Expected [%s], got %v", cwd, got)
	}
}

func TestCollectRepoPaths_AbsolutizesRelativePaths(t *testing.T) {
	got := collectRepoPaths(config.Config{}, []string{"."})

	if len(got) != 1 || !filepath.IsAbs(got[0]) {
		t.Errorf("Expected one absolute path, got %v", got)
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := RootCmd()

	for flag, shorthand := range map[string]string{
		"format":  "f",
		"team":    "t",
		"repo":    "",
		"no-copy": "",
	} {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			t.Errorf("Expected --%s flag to exist", flag)
			continue
		}
		if f.Shorthand != shorthand {
			t.Errorf("Expected --%s shorthand %q, got %q", flag, shorthand, f.Shorthand)
		}
	}
}
