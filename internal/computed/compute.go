package computed

import (
	"fmt"
	"strings"

	"panelbox/internal/merge"
	"panelbox/internal/metadata"
)

// Compute runs the derivation chain over the merged record and returns the
// final record together with the per-rule patches that produced it. The
// input record is not mutated.
func Compute(env *Env, merged metadata.Record) (metadata.Record, []Patch) {
	if env == nil {
		env = &Env{}
	}
	current := merged.Clone()
	var patches []Patch
	for _, rule := range Rules() {
		patch := runRule(env, rule, current)
		if len(patch) == 0 {
			continue
		}
		merge.Records(current, rule.Strategy, patch)
		patches = append(patches, Patch{Label: rule.Label, Strategy: rule.Strategy, Record: patch})
	}
	applyDeletes(current, env.collectDeleteKeys())
	return current, patches
}

func runRule(env *Env, rule Rule, current metadata.Record) (patch metadata.Record) {
	defer func() {
		if r := recover(); r != nil {
			if env.Logger != nil {
				env.Logger.Warn("derivation rule failed",
					"rule", rule.Label,
					"error", fmt.Sprint(r))
			}
			patch = nil
		}
	}()
	return rule.Derive(env, current)
}

func (e *Env) collectDeleteKeys() map[string]struct{} {
	out := make(map[string]struct{}, len(e.deleteKeys))
	if e.Config != nil {
		for key := range e.Config.DeleteKeySet() {
			out[key] = struct{}{}
		}
	}
	for key := range e.deleteKeys {
		out[key] = struct{}{}
	}
	return out
}

// applyDeletes removes the listed fields, resolving one-dot paths like
// "date.month" into the nested sub-record. An emptied sub-record is
// removed with its parent key.
func applyDeletes(record metadata.Record, keys map[string]struct{}) {
	for key := range keys {
		parent, leaf, nested := strings.Cut(key, ".")
		if !nested {
			delete(record, key)
			continue
		}
		sub := record.Sub(parent)
		if sub == nil {
			continue
		}
		delete(sub, leaf)
		if len(sub) == 0 {
			delete(record, parent)
		}
	}
}
