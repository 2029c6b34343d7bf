package app_test

import (
	"testing"

	"github.com/callmeBron/generics"
	"github.com/callmeBron/generics/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessUserInput_Defaults(t *testing.T) {
	config, err := app.ProcessUserInput(nil)
	require.NoError(t, err)

	assert.Equal(t, app.Config{
		Title:         generics.DefaultTitle,
		PrinterConfig: generics.PrinterConfig{Title: generics.DefaultTitle},
	}, config)
}

func TestProcessUserInput_AllOptions(t *testing.T) {
	args := []string{"-j", "-pretty", "-D", "-verbose", "-seed", "seed.yaml", "-db", "out.db", "-csv", "out.csv", "Generic view"}

	config, err := app.ProcessUserInput(args)
	require.NoError(t, err)

	assert.Equal(t, "Generic view", config.Title)
	assert.Equal(t, "seed.yaml", config.SeedPath)
	assert.True(t, config.Verbose)
	assert.Equal(t, generics.PrinterConfig{
		OutputJSON:    true,
		PrettyJSON:    true,
		WithTimestamp: true,
		OutputDBPath:  "out.db",
		OutputCSVPath: "out.csv",
		Title:         "Generic view",
	}, config.PrinterConfig)
}

func TestProcessUserInput_FlagsAfterTitle(t *testing.T) {
	args := []string{"tutorial", "-no-color", "-seed", "seed.yaml"}

	config, err := app.ProcessUserInput(args)
	require.NoError(t, err)

	assert.Equal(t, "tutorial", config.Title)
	assert.True(t, config.PrinterConfig.NoColor)
	assert.Equal(t, "seed.yaml", config.SeedPath)
	assert.Equal(t, []string{"tutorial", "-no-color", "-seed", "seed.yaml"}, args, "caller's args are left untouched")
}

func TestProcessUserInput_ControlFlow(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "help", args: []string{"-h"}, want: app.ErrUsageRequested},
		{name: "version", args: []string{"-v"}, want: app.ErrVersionRequested},
		{name: "update check", args: []string{"-u"}, want: app.ErrUpdateCheckRequested},
		{name: "unknown flag", args: []string{"-x"}, want: app.ErrUsageRequested},
		{name: "too many titles", args: []string{"one", "two"}, want: app.ErrUsageRequested},
		{name: "empty title", args: []string{""}, want: app.ErrUsageRequested},
		{name: "missing flag value", args: []string{"-csv"}, want: app.ErrUsageRequested},
		{name: "flag instead of value", args: []string{"-db", "-j"}, want: app.ErrUsageRequested},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.ProcessUserInput(tt.args)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
