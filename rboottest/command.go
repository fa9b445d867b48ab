package rboottest

import "rboot/system/command"

// FakeShellCommand satisfies command.ShellCommandRunner without running
// anything.
type FakeShellCommand struct {
	Name           string
	Args           []string
	Dir            string
	EnvVars        []string
	InheritEnvVars bool
	Err            error
}

func (f *FakeShellCommand) Run() error {
	return f.Err
}

func (f *FakeShellCommand) String() string {
	return f.Name
}

func (f *FakeShellCommand) GetName() string {
	return f.Name
}

func (f *FakeShellCommand) GetArgs() []string {
	return f.Args
}

func (f *FakeShellCommand) GetDir() string {
	return f.Dir
}

func (f *FakeShellCommand) GetEnvVars() []string {
	return f.EnvVars
}

func (f *FakeShellCommand) GetInheritEnvVars() bool {
	return f.InheritEnvVars
}

func (f *FakeShellCommand) GetContext() command.ShellCommandContexter {
	return nil
}

func (f *FakeShellCommand) GetExecutor() command.ShellCommandExecutor {
	return nil
}
