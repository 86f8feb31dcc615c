package adapters

import (
	"encoding/csv"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pacplan/internal/ports"
	"pacplan/internal/types"
)

// ProgramListAdapter converts the legacy CSV program list into plan
// steps. Columns are tag,name,note with tag selecting the step kind:
// A installs from the AUR, G clones a git repository (name is the
// remote URL), P installs through pip, anything else installs from the
// official repositories.
type ProgramListAdapter struct{}

func NewProgramListAdapter() ProgramListAdapter {
	return ProgramListAdapter{}
}

func (a ProgramListAdapter) LoadPrograms(csvPath string) ([]types.Step, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("program list not found").
			WithCause(err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse program list").
			WithCause(err)
	}

	var steps []types.Step
	for i, record := range records {
		if len(record) < 2 {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("program list line %d needs at least tag and name", i+1))
		}
		tag := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		if name == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("program list line %d has an empty name", i+1))
		}
		steps = append(steps, stepForProgram(tag, name))
	}
	return steps, nil
}

func stepForProgram(tag string, name string) types.Step {
	switch strings.ToUpper(tag) {
	case "A":
		return types.Step{
			Name:    "install-" + name,
			Kind:    types.StepKindAur,
			Package: name,
		}
	case "G":
		base := strings.TrimSuffix(path.Base(name), ".git")
		return types.Step{
			Name: "clone-" + base,
			Kind: types.StepKindGitRepo,
			URL:  name,
			Dest: "~/" + base,
		}
	case "P":
		return types.Step{
			Name:    "install-" + name,
			Kind:    types.StepKindPip,
			Package: name,
		}
	default:
		return types.Step{
			Name:    "install-" + name,
			Kind:    types.StepKindRepo,
			Package: name,
		}
	}
}

var _ ports.ProgramListPort = ProgramListAdapter{}
