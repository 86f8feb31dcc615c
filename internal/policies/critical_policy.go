package policies

import "pacplan/internal/types"

// CriticalPolicy decides which step failures halt the pipeline.
// A step is critical when it is marked so in the plan, when its name
// appears in the configured extra set, or when it provides the AUR
// helper: every later aur step depends on the helper binary, so
// continuing past its failure would only produce a cascade of
// failures the operator did not ask for.
type CriticalPolicy struct {
	extra map[string]struct{}
}

func NewCriticalPolicy(names []string) CriticalPolicy {
	extra := make(map[string]struct{}, len(names))
	for _, name := range names {
		extra[name] = struct{}{}
	}
	return CriticalPolicy{extra: extra}
}

func (p CriticalPolicy) IsCritical(step types.Step) bool {
	if step.Critical || step.ProvidesAurHelper {
		return true
	}
	_, ok := p.extra[step.Name]
	return ok
}
