package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearSkimEnv(t *testing.T) {
	old := os.Getenv(EnvDefaultOptions)
	oldCmd := os.Getenv(EnvDefaultCommand)
	os.Unsetenv(EnvDefaultOptions)
	os.Unsetenv(EnvDefaultCommand)
	t.Cleanup(func() {
		os.Setenv(EnvDefaultOptions, old)
		os.Setenv(EnvDefaultCommand, oldCmd)
	})
}

func TestResolveUsesDefaultsWhenNothingSet(t *testing.T) {
	clearSkimEnv(t)
	opts, err := Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "smart", opts.Case)
	assert.Equal(t, 8, opts.TabStop)
}

func TestResolveCommandLineOverridesEnvDefault(t *testing.T) {
	clearSkimEnv(t)
	os.Setenv(EnvDefaultOptions, "--case=ignore")

	opts, err := Resolve([]string{"--case=respect"})
	require.NoError(t, err)
	assert.Equal(t, "respect", opts.Case)
}

func TestResolveEnvDefaultAppliesWhenCommandLineSilent(t *testing.T) {
	clearSkimEnv(t)
	os.Setenv(EnvDefaultOptions, "--multi")

	opts, err := Resolve(nil)
	require.NoError(t, err)
	assert.True(t, opts.Multi)
}

func TestResolveFallsBackToDefaultCommandEnvVar(t *testing.T) {
	clearSkimEnv(t)
	os.Setenv(EnvDefaultCommand, "find .")

	opts, err := Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "find .", opts.Cmd)
}

func TestResolveExplicitCmdFlagBeatsEnvCommand(t *testing.T) {
	clearSkimEnv(t)
	os.Setenv(EnvDefaultCommand, "find .")

	opts, err := Resolve([]string{"--cmd=rg --files"})
	require.NoError(t, err)
	assert.Equal(t, "rg --files", opts.Cmd)
}

func TestResolveParsesBindMultipleTimes(t *testing.T) {
	clearSkimEnv(t)
	opts, err := Resolve([]string{"--bind=ctrl-j:down", "--bind=ctrl-k:up"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ctrl-j:down", "ctrl-k:up"}, opts.Bind)
}

func TestResolveFilterFlagSetsFilterSet(t *testing.T) {
	clearSkimEnv(t)
	opts, err := Resolve([]string{"--filter=abc"})
	require.NoError(t, err)
	assert.True(t, opts.FilterSet)
	assert.Equal(t, "abc", opts.Filter)
}

func TestResolveInvalidFlagIsError(t *testing.T) {
	clearSkimEnv(t)
	_, err := Resolve([]string{"--not-a-real-flag"})
	assert.Error(t, err)
}

func TestResolveNoMultiOverridesMulti(t *testing.T) {
	clearSkimEnv(t)
	opts, err := Resolve([]string{"--multi", "--no-multi"})
	require.NoError(t, err)
	assert.False(t, opts.Multi)
}
