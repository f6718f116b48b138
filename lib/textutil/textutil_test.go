package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJerseyNumber(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Jersey Number 0", "0"},
		{"Jersey Number: 23", "23"},
		{"#7", "7"},
		{"No. 12", "12"},
		{"No: 4", "4"},
		{"5 Jane Doe", "5"},
		{"  9  ", "9"},
		{"", ""},
		{"Head Coach", ""},
		{"6'2\"", ""},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, JerseyNumber(tc.input), "input: %q", tc.input)
	}
}

func TestHeight(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"5'9\"", "5'9\""},
		{"5-9", "5-9"},
		{"1.75m", "1.75m"},
		{"5'9\" / 1.75m", "5'9\" / 1.75m"},
		{"Height: 5-10", "5-10"},
		{"", ""},
		{"Junior", ""},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, Height(tc.input), "input: %q", tc.input)
	}
}

func TestHeightIdempotent(t *testing.T) {
	inputs := []string{"5'9\"", "5-9", "1.75m", "6'0\" / 1.83m"}
	for _, input := range inputs {
		once := Height(input)
		require.Equal(t, once, Height(once), "input: %q", input)
	}
}

func TestPosition(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"GK", "GK"},
		{"Goalkeeper", "GK"},
		{"goalie", "GK"},
		{"D", "D"},
		{"Defender", "D"},
		{"CB", "D"},
		{"Back", "D"},
		{"M", "M"},
		{"Midfielder", "M"},
		{"CDM", "M"},
		{"F", "F"},
		{"Forward", "F"},
		{"Striker", "F"},
		{"Winger", "F"},
		{"Forward/Midfielder", "F"},
		{"", ""},
		{"Head Coach", ""},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, Position(tc.input), "input: %q", tc.input)
	}
}

func TestAcademicYear(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Fr.", "Freshman"},
		{"So", "Sophomore"},
		{"JR", "Junior"},
		{"Sr.", "Senior"},
		{"Gr", "Graduate"},
		{"R-So", "Redshirt Sophomore"},
		{"3rd", "Junior"},
		{"Freshman", "Freshman"},
		{"Fifth Year", "Fifth Year"},
		{"", ""},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, AcademicYear(tc.input), "input: %q", tc.input)
	}
}

func TestIsAcademicYear(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"Jr.", true},
		{"R-So", true},
		{"Junior", true},
		{"freshman", true},
		{"Fifth Year", true},
		{"5'9\"", false},
		{"150 lbs", false},
		{"", false},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, IsAcademicYear(tc.input), "input: %q", tc.input)
	}
}

func TestSplitHometown(t *testing.T) {
	testCases := []struct {
		input      string
		hometown   string
		highSchool string
		previous   string
	}{
		{
			input:    "Raleigh, N.C.",
			hometown: "Raleigh, N.C.",
		},
		{
			input:      "Raleigh, N.C. / Broughton",
			hometown:   "Raleigh, N.C.",
			highSchool: "Broughton",
		},
		{
			input:    "Greenville, S.C. / Furman University",
			hometown: "Greenville, S.C.",
			previous: "Furman University",
		},
		{
			input:      "Raleigh, N.C. / Broughton / NC State",
			hometown:   "Raleigh, N.C.",
			highSchool: "Broughton",
			previous:   "NC State",
		},
		{
			input:      "Austin, Texas / Westlake Full Bio",
			hometown:   "Austin, Texas",
			highSchool: "Westlake",
		},
	}
	for _, tc := range testCases {
		hometown, highSchool, previous := SplitHometown(tc.input)
		require.Equal(t, tc.hometown, hometown, "input: %q", tc.input)
		require.Equal(t, tc.highSchool, highSchool, "input: %q", tc.input)
		require.Equal(t, tc.previous, previous, "input: %q", tc.input)
	}
}

func TestSplitParenSchool(t *testing.T) {
	hs, prev := SplitParenSchool("Northern Guilford High School (NC State)")
	require.Equal(t, "Northern Guilford High School", hs)
	require.Equal(t, "NC State", prev)

	hs, prev = SplitParenSchool("Myers Park (Charlotte)")
	require.Equal(t, "Myers Park", hs)
	require.Equal(t, "", prev)

	hs, prev = SplitParenSchool("Ardrey Kell")
	require.Equal(t, "Ardrey Kell", hs)
	require.Equal(t, "", prev)
}

func TestClean(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"  Jane\n\t Doe  ", "Jane Doe"},
		{"Jane Doe Full Bio", "Jane Doe"},
		{"Hometown: Raleigh, N.C.", "Raleigh, N.C."},
		{"Jane Doe Instagram", "Jane Doe"},
		{"link Opens in a new window", "link"},
		{"", ""},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, Clean(tc.input), "input: %q", tc.input)
	}
}
