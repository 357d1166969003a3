package replay

import (
	"strings"

	"dragon-clan/clan"
)

const (
	maxDragons = 256
	maxSteps   = 100_000
)

type normalizedStep struct {
	dragon, other string
}

type normalizedSpec struct {
	seed          int64
	clanName      string
	roster        clan.Roster
	randomDragons int
	strict        bool
	steps         []normalizedStep
	randomSteps   int
}

func normalizeSpec(spec Spec) (normalizedSpec, error) {
	var out normalizedSpec

	if spec.Version != 0 && spec.Version != SpecVersion {
		return out, specError(ReasonInvalidVersion, "unsupported spec version %d", spec.Version)
	}
	out.seed = spec.Seed
	if out.seed == 0 {
		// 0 would mean time-based; a replay must be reproducible
		out.seed = 1
	}
	out.clanName = strings.TrimSpace(spec.ClanName)
	out.strict = spec.Strict

	if spec.RandomDragons < 0 {
		return out, specError(ReasonInvalidRoster, "random_dragons must be >= 0")
	}
	total := len(spec.Roster) + spec.RandomDragons
	if total > maxDragons {
		return out, specError(ReasonInvalidRoster, "at most %d dragons are supported, got %d", maxDragons, total)
	}
	out.randomDragons = spec.RandomDragons

	known := make(map[string]struct{}, len(spec.Roster))
	for i, rd := range spec.Roster {
		rd.Name = strings.TrimSpace(rd.Name)
		if rd.Name == "" {
			return out, specError(ReasonInvalidDragon, "roster dragon %d has no name", i)
		}
		if !rd.Element.Valid() {
			return out, specError(ReasonInvalidDragon, "roster dragon %q has no valid element", rd.Name)
		}
		if rd.Age != nil && *rd.Age < 0 {
			return out, specError(ReasonInvalidDragon, "roster dragon %q age must be >= 0", rd.Name)
		}
		if _, dup := known[rd.Name]; dup {
			return out, specError(ReasonDuplicateName, "duplicate dragon name %q", rd.Name)
		}
		known[rd.Name] = struct{}{}
		out.roster.Dragons = append(out.roster.Dragons, rd)
	}

	if spec.RandomSteps < 0 {
		return out, specError(ReasonInvalidSteps, "random_steps must be >= 0")
	}
	if len(spec.Steps)+spec.RandomSteps > maxSteps {
		return out, specError(ReasonInvalidSteps, "at most %d steps are supported", maxSteps)
	}
	out.randomSteps = spec.RandomSteps

	for i, step := range spec.Steps {
		ns := normalizedStep{dragon: strings.TrimSpace(step.Dragon), other: strings.TrimSpace(step.Other)}
		for _, name := range []string{ns.dragon, ns.other} {
			if _, ok := known[name]; !ok {
				return out, stepError(i, ReasonUnknownDragon, "dragon %q is not in the roster", name)
			}
		}
		if ns.dragon == ns.other {
			return out, stepError(i, ReasonSelfInteraction, "dragon %q cannot interact with itself", ns.dragon)
		}
		out.steps = append(out.steps, ns)
	}

	if (len(out.steps) > 0 || out.randomSteps > 0) && total < 2 {
		return out, specError(ReasonNotEnoughDragons, "interactions need at least 2 dragons, got %d", total)
	}
	return out, nil
}
