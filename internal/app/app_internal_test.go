package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		v1, v2 string
		want   int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "1.0.1", -1},
		{"1.10.0", "1.9.0", 1},
		{"1.0", "1.0.0", -1},
		{"1.0.0.1", "1.0.0", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, compareVersions(tt.v1, tt.v2), "%s vs %s", tt.v1, tt.v2)
	}
}

func TestPermuteArgs(t *testing.T) {
	args := []string{"title", "-j", "-seed", "s.yaml", "--db", "out.db"}
	require.NoError(t, permuteArgs(args))

	assert.Equal(t, []string{"-j", "-seed", "s.yaml", "--db", "out.db", "title"}, args)
}

func TestRun_JSONWithSeed(t *testing.T) {
	seedPath := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte("text: Hello Developer!\nnumber: null\n"), 0o644))

	code := run(context.Background(), []string{"-j", "-seed", seedPath}, false)
	assert.Equal(t, 0, code)
}

func TestRun_CSV(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "walkthrough.csv")

	code := run(context.Background(), []string{"-csv", out, "tutorial"}, true)
	require.Equal(t, 0, code)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "initial,text,string,true,Defined as string now")
	assert.Contains(t, string(data), "cleared,number,int,false,")
	assert.FileExists(t, filepath.Join(dir, "walkthrough_summary.csv"))
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "pretty without json", args: []string{"-pretty"}},
		{name: "missing seed", args: []string{"-seed", filepath.Join(t.TempDir(), "missing.yaml")}},
		{name: "usage", args: []string{"-h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 1, run(context.Background(), tt.args, false))
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, 1, run(ctx, []string{"-no-color"}, false))
}

func TestRun_Version(t *testing.T) {
	assert.Equal(t, 0, run(context.Background(), []string{"-v"}, false))
}
