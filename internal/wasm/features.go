package wasm

import "strings"

// Features is a bitset of optional binary-format proposals the parser will
// accept. The emitter is unconditional: it only ever writes what the AST
// already contains, so Features only ever gates ParseBinary.
//
// Values start at 1 (not 0) because a zero-valued Features intentionally
// carries no meaning: Features(0).Set(0, true) must stay false, or every
// caller that forgets to opt into a feature would silently satisfy it.
type Features uint64

const (
	FeatureReferenceTypes Features = 1 << iota
	FeatureBulkMemoryOperations
	FeatureNonTrappingFloatToIntConversion
	FeatureSignExtensionOps
)

// Features1_0 is the WebAssembly 1.0 (MVP) baseline: none of the four named
// proposals are enabled.
const Features1_0 Features = 0

// FeaturesAll enables every proposal this module understands.
const FeaturesAll = FeatureReferenceTypes | FeatureBulkMemoryOperations |
	FeatureNonTrappingFloatToIntConversion | FeatureSignExtensionOps

// Set returns a copy of f with feature set to val.
func (f Features) Set(feature Features, val bool) Features {
	if val {
		return f | feature
	}
	return f &^ feature
}

// Get returns true if feature is enabled in f.
func (f Features) Get(feature Features) bool {
	return f&feature != 0
}

// Require returns an error if feature is not enabled in f.
func (f Features) Require(feature Features) error {
	if f.Get(feature) {
		return nil
	}
	return &FeatureDisabledError{Feature: featureName(feature)}
}

// FeatureDisabledError is returned by Require and surfaced by the parser
// when an encoding from a gated proposal is seen but the feature was not
// enabled.
type FeatureDisabledError struct {
	Feature string
}

func (e *FeatureDisabledError) Error() string {
	return "feature \"" + e.Feature + "\" is disabled"
}

// String renders the set bits of f as a sorted, pipe-delimited list of
// feature names. Unrecognized bits are silently omitted.
func (f Features) String() string {
	var names []string
	for i := 0; i < 64; i++ {
		bit := Features(1) << uint(i)
		if f.Get(bit) {
			if name := featureName(bit); name != "" {
				names = append(names, name)
			}
		}
	}
	return strings.Join(names, "|")
}

func featureName(f Features) string {
	switch f {
	case FeatureReferenceTypes:
		return "reference-types"
	case FeatureBulkMemoryOperations:
		return "bulk-memory-operations"
	case FeatureNonTrappingFloatToIntConversion:
		return "nontrapping-float-to-int-conversion"
	case FeatureSignExtensionOps:
		return "sign-extension-ops"
	default:
		return ""
	}
}
