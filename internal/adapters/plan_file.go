package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pacplan/internal/ports"
	"pacplan/internal/types"
)

type PlanFileAdapter struct{}

func NewPlanFileAdapter() PlanFileAdapter {
	return PlanFileAdapter{}
}

func (a PlanFileAdapter) LoadPlan(path string) (types.PlanSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.PlanSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("plan file not found").
			WithCause(err)
	}
	var spec types.PlanSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return types.PlanSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse plan yaml").
			WithCause(err)
	}
	if spec.Kind != types.PlanKindPlan {
		return types.PlanSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec kind is not plan")
	}
	return spec, nil
}

func (a PlanFileAdapter) WritePlan(path string, spec types.PlanSpec) error {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal plan yaml").
			WithCause(err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create plan directory").
				WithCause(err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write plan file").
			WithCause(err)
	}
	return nil
}

var _ ports.PlanLoaderPort = PlanFileAdapter{}
var _ ports.PlanWriterPort = PlanFileAdapter{}
