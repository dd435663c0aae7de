// Package testutil provides shared test doubles.
package testutil

import (
	"context"
	"strings"
	"sync"
)

// Call records one Run invocation on a FakeExecutor.
type Call struct {
	Dir     string
	Command string
}

// FakeExecutor is an in-memory remote.Executor that records every command.
//
// Run consults RunFunc when set and otherwise succeeds with empty output.
// List returns the entries registered in Dirs for the directory (in the order given),
// or ListErr when set. List calls are recorded in Listed, not in Calls.
type FakeExecutor struct {
	HostName string
	Dirs     map[string][]string
	ListErr  error
	RunFunc  func(dir string, command string) (string, error)

	mu     sync.Mutex
	Calls  []Call
	Listed []string
}

// NewFakeExecutor returns a FakeExecutor reporting host.
func NewFakeExecutor(host string) *FakeExecutor {
	return &FakeExecutor{HostName: host, Dirs: make(map[string][]string)}
}

// Host returns HostName.
func (f *FakeExecutor) Host() string {
	return f.HostName
}

// Run records the call and delegates to RunFunc.
func (f *FakeExecutor) Run(_ context.Context, dir string, command string) (string, error) {
	f.mu.Lock()
	f.Calls = append(f.Calls, Call{Dir: dir, Command: command})
	f.mu.Unlock()
	if f.RunFunc != nil {
		return f.RunFunc(dir, command)
	}
	return "", nil
}

// List returns the registered entries of dir.
func (f *FakeExecutor) List(_ context.Context, dir string) ([]string, error) {
	f.mu.Lock()
	f.Listed = append(f.Listed, dir)
	f.mu.Unlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]string(nil), f.Dirs[dir]...), nil
}

// Commands returns the recorded command strings in call order.
func (f *FakeExecutor) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.Calls))
	for i, call := range f.Calls {
		out[i] = call.Command
	}
	return out
}

// CommandsMatching returns the recorded commands that start with prefix.
func (f *FakeExecutor) CommandsMatching(prefix string) []string {
	out := make([]string, 0)
	for _, cmd := range f.Commands() {
		if strings.HasPrefix(cmd, prefix) {
			out = append(out, cmd)
		}
	}
	return out
}
