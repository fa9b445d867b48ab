package rboottest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ShellCall struct {
	Binary         string
	ContainsArgs   []string
	Dir            string
	EnvVars        []string
	InheritEnvVars bool
}

func (s *ShellCall) Equal(t *testing.T, name string, args []string, dir string, envVars []string, inheritEnvVars bool) {
	assert := assert.New(t)
	assert.Equal(s.Binary, name)
	for _, arg := range s.ContainsArgs {
		assert.Contains(args, arg)
	}
	assert.Equal(s.Dir, dir)
	for _, v := range s.EnvVars {
		assert.Contains(envVars, v)
	}
	assert.Equal(s.InheritEnvVars, inheritEnvVars)
}

var CommonShellCalls = map[string]*ShellCall{
	"renvInit": {
		Binary:         "/usr/local/bin/Rscript",
		ContainsArgs:   []string{"--vanilla", "-e"},
		Dir:            "/project",
		EnvVars:        nil,
		InheritEnvVars: true,
	},
	"renvSnapshot": {
		Binary:         "/usr/local/bin/Rscript",
		ContainsArgs:   []string{"--vanilla", "-e", "renv::snapshot(prompt = FALSE)"},
		Dir:            "/project",
		EnvVars:        nil,
		InheritEnvVars: true,
	},
}
