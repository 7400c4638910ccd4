package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFeatures_ZeroIsInvalid reminds maintainers that a bitset cannot use
// zero as a flag: iota starts at 1 for exactly this reason.
func TestFeatures_ZeroIsInvalid(t *testing.T) {
	f := Features(0)
	f = f.Set(0, true)
	require.False(t, f.Get(0))
}

func TestFeatures_SetGet(t *testing.T) {
	for _, tc := range []struct {
		name    string
		feature Features
	}{
		{name: "reference-types", feature: FeatureReferenceTypes},
		{name: "bulk-memory-operations", feature: FeatureBulkMemoryOperations},
		{name: "nontrapping-float-to-int-conversion", feature: FeatureNonTrappingFloatToIntConversion},
		{name: "sign-extension-ops", feature: FeatureSignExtensionOps},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := Features1_0
			require.False(t, f.Get(tc.feature))

			f = f.Set(tc.feature, true)
			require.True(t, f.Get(tc.feature))

			f = f.Set(tc.feature, false)
			require.False(t, f.Get(tc.feature))
		})
	}
}

func TestFeatures_String(t *testing.T) {
	for _, tc := range []struct {
		name     string
		feature  Features
		expected string
	}{
		{name: "none", feature: Features1_0, expected: ""},
		{name: "reference-types", feature: FeatureReferenceTypes, expected: "reference-types"},
		{
			name:     "reference-types|bulk-memory-operations",
			feature:  FeatureReferenceTypes | FeatureBulkMemoryOperations,
			expected: "reference-types|bulk-memory-operations",
		},
		{
			name:    "all",
			feature: FeaturesAll,
			expected: "reference-types|bulk-memory-operations|" +
				"nontrapping-float-to-int-conversion|sign-extension-ops",
		},
		{name: "undefined bit", feature: 1 << 63, expected: ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.feature.String())
		})
	}
}

func TestFeatures_Require(t *testing.T) {
	for _, tc := range []struct {
		name        string
		feature     Features
		expectedErr string
	}{
		{name: "disabled", feature: Features1_0, expectedErr: `feature "reference-types" is disabled`},
		{name: "enabled", feature: FeatureReferenceTypes},
		{
			name:        "other feature enabled",
			feature:     FeatureBulkMemoryOperations,
			expectedErr: `feature "reference-types" is disabled`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.feature.Require(FeatureReferenceTypes)
			if tc.expectedErr != "" {
				require.EqualError(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
