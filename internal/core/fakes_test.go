package core

import (
	"context"
	"errors"

	"pacplan/internal/ports"
	"pacplan/internal/types"
)

type fakeRunner struct {
	calls   []ports.Command
	handler func(ports.Command) (ports.Execution, error)
}

func (r *fakeRunner) Run(_ context.Context, cmd ports.Command) (ports.Execution, error) {
	r.calls = append(r.calls, cmd)
	if r.handler == nil {
		return ports.Execution{}, nil
	}
	return r.handler(cmd)
}

func (r *fakeRunner) callsFor(path string) []ports.Command {
	var matched []ports.Command
	for _, call := range r.calls {
		if call.Path == path {
			matched = append(matched, call)
		}
	}
	return matched
}

type fakeProbe struct {
	installed map[string]string
	err       error
	queries   []string
}

func (p *fakeProbe) Installed(_ context.Context, name string) (ports.InstalledPackage, bool, error) {
	p.queries = append(p.queries, name)
	if p.err != nil {
		return ports.InstalledPackage{}, false, p.err
	}
	version, ok := p.installed[name]
	if !ok {
		return ports.InstalledPackage{}, false, nil
	}
	return ports.InstalledPackage{Name: name, Version: version}, true, nil
}

type fakeRepo struct {
	action ports.SyncAction
	err    error
	syncs  []string
}

func (r *fakeRepo) Sync(_ context.Context, url string, dest string) (ports.SyncAction, error) {
	r.syncs = append(r.syncs, url+" "+dest)
	if r.err != nil {
		return "", r.err
	}
	return r.action, nil
}

type fakeSink struct {
	records []types.FailureRecord
}

func (s *fakeSink) Append(record types.FailureRecord) error {
	s.records = append(s.records, record)
	return nil
}

var errProbeBroken = errors.New("package database unreadable")
