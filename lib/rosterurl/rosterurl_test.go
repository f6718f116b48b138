package rosterurl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeasonRange(t *testing.T) {
	require.Equal(t, "2025-26", SeasonRange("2025"))
	require.Equal(t, "1999-00", SeasonRange("1999"))
	require.Equal(t, "2024-25", SeasonRange("2024-25"))
}

func TestTrailingYear(t *testing.T) {
	require.Equal(t, "2025", TrailingYear("2024-25"))
	require.Equal(t, "2025", TrailingYear("2024-2025"))
	require.Equal(t, "2025", TrailingYear("2025"))
}

func TestBuild(t *testing.T) {
	testCases := []struct {
		base     string
		season   string
		family   string
		expected string
	}{
		{
			base:     "https://goheels.com/sports/womens-soccer",
			season:   "2025",
			family:   FamilyDefault,
			expected: "https://goheels.com/sports/womens-soccer/roster/2025",
		},
		{
			base:     "https://example.edu/sports/wsoc/index",
			season:   "2025",
			family:   FamilyIndex,
			expected: "https://example.edu/sports/wsoc/roster/2025",
		},
		{
			base:     "https://ucfknights.com/sports/womens-soccer",
			season:   "2025",
			family:   FamilyTableView,
			expected: "https://ucfknights.com/sports/womens-soccer/roster/season/2025?view=table",
		},
		{
			base:     "https://virginiasports.com/sports/wsoccer",
			season:   "2025",
			family:   FamilySeasonSlash,
			expected: "https://virginiasports.com/sports/wsoccer/roster/season/2025-26/",
		},
		{
			base:     "https://clemsontigers.com/sports/womens-soccer",
			season:   "2024-25",
			family:   FamilyYearTable,
			expected: "https://clemsontigers.com/sports/womens-soccer/roster/season/2025/?view=table",
		},
		{
			base:     "https://ukathletics.com/sports/wsoccer",
			season:   "2024-25",
			family:   FamilyYearSlash,
			expected: "https://ukathletics.com/sports/wsoccer/roster/season/2025/",
		},
		{
			base:     "https://example.edu/sports/wsoc/index",
			season:   "2025",
			family:   FamilyRangeFirst,
			expected: "https://example.edu/sports/wsoc/2025-26/roster",
		},
		{
			// a fully-specified roster path is left alone
			base:     "https://example.edu/sports/wsoc/roster/2025",
			season:   "2026",
			family:   FamilyDefault,
			expected: "https://example.edu/sports/wsoc/roster/2025",
		},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, Build(tc.base, tc.season, tc.family),
			"base=%s family=%s", tc.base, tc.family)
	}
}

func TestDetectFamily(t *testing.T) {
	require.Equal(t, FamilyIndex, DetectFamily("https://example.edu/sports/wsoc/index"))
	require.Equal(t, FamilyPlain, DetectFamily("https://example.edu/sports/wsoc"))
	require.Equal(t, FamilyDefault, DetectFamily("https://goheels.com/sports/womens-soccer"))
}

func TestAlternates(t *testing.T) {
	alts := Alternates("https://example.edu/sports/wsoc/index", "2025")
	require.Equal(t, []string{
		"https://example.edu/sports/wsoc/2025-26/roster",
		"https://example.edu/sports/wsoc/index/roster/",
	}, alts)
}
