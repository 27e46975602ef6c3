package configloader

import "github.com/yaklabco/gradlint/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	// Scalars: override overwrites base if set (non-zero value)
	if override.GradleBin != "" {
		result.GradleBin = override.GradleBin
	}
	if override.Format != "" {
		result.Format = override.Format
	}

	// Booleans: false is the zero value, so a config file cannot unset a
	// flag an earlier layer enabled. Only true overrides.
	if override.NoWrapper {
		result.NoWrapper = override.NoWrapper
	}
	if override.Strict {
		result.Strict = override.Strict
	}

	// Maps: deep merge
	result.Tasks = mergeTasks(base.Tasks, override.Tasks)

	// Slices: override replaces base entirely if non-nil
	if override.ExtraArgs != nil {
		result.ExtraArgs = override.ExtraArgs
	}

	return &result
}

// mergeTasks performs a per-language merge of task overrides.
// Both maps are iterated, with override's values taking precedence.
func mergeTasks(base, override map[string]string) map[string]string {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]string, len(base)+len(override))
	for key, val := range base {
		result[key] = val
	}
	for key, val := range override {
		result[key] = val
	}
	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
