// FILE: optionsconfig/depends.go
package optionsconfig

// applyAutoTrue implements the root-option auto-true policy.
//
// The policy is global: it is decided once per resolution based on whether
// ANY root option was explicitly supplied via the environment or CLI layer.
// When none were, every root option is forced to true regardless of its
// schema default, which makes schemas usable out of the box with no input.
// An explicitly supplied root option, including one set to false, suppresses
// the policy for the whole resolution.
//
// Returns true if the policy fired.
func applyAutoTrue(schema *Schema, values map[string]any, explicit map[string]bool) bool {
	roots := schema.RootOptions()
	if len(roots) == 0 {
		return false
	}

	for _, root := range roots {
		if explicit[root] {
			return false
		}
	}

	for _, root := range roots {
		values[root] = true
	}
	return true
}

// validateDependencies enforces requiredness for dependent options.
//
// An option with a non-empty DependsOn list is active iff at least one of
// its dependencies resolved to true. Active options must have a non-nil
// value; options whose dependencies are all inactive keep whatever value
// they resolved to without any check. Every violation in the pass is
// collected into a single DependencyError.
func validateDependencies(schema *Schema, values map[string]any) error {
	var violations []DependencyViolation

	for _, key := range schema.Keys() {
		def, _ := schema.Get(key)
		if len(def.DependsOn) == 0 {
			continue
		}

		var active []string
		for _, dep := range def.DependsOn {
			if values[dep] == true {
				active = append(active, dep)
			}
		}
		if len(active) == 0 {
			continue
		}

		if values[key] == nil {
			violations = append(violations, DependencyViolation{
				Key:       key,
				DependsOn: append([]string(nil), def.DependsOn...),
				Active:    active,
			})
		}
	}

	if len(violations) > 0 {
		return &DependencyError{Violations: violations}
	}
	return nil
}
