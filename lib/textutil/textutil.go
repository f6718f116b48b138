package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

var jerseyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`Jersey Number[:\s]+(\d+)`),
	regexp.MustCompile(`#(\d{1,2})\b`),
	regexp.MustCompile(`No\.?[:\s]*(\d{1,2})\b`),
	// a bare number directly followed by a capitalized name
	regexp.MustCompile(`\b(\d{1,2})\s+[A-Z]`),
	regexp.MustCompile(`^\s*(\d{1,2})\s*$`),
}

// JerseyNumber pulls a jersey number out of free text. Labelled
// patterns are tried before bare-number heuristics so unrelated
// digits (heights, years) don't win.
func JerseyNumber(text string) string {
	if text == "" {
		return ""
	}
	for _, p := range jerseyPatterns {
		m := p.FindStringSubmatch(text)
		if m != nil {
			return m[1]
		}
	}
	return ""
}

var heightPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+['′]\s*\d+["″']{1,2}\s*/\s*\d+\.\d+m`),
	regexp.MustCompile(`\d+['′]\s*\d+["″']{1,2}`),
	regexp.MustCompile(`\d+-\d+`),
	regexp.MustCompile(`\d+\.\d+m`),
	regexp.MustCompile(`Height:\s*([^,\n]+)`),
}

// Height matches imperial (6'2" or 6-2), metric (1.88m) or combined
// (6'2" / 1.88m) height notations, in that order of preference.
// The matched literal is returned trimmed, which makes the function
// idempotent on its own output.
func Height(text string) string {
	if text == "" {
		return ""
	}
	for _, p := range heightPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 1 {
			return strings.TrimSpace(m[1])
		}
		return strings.TrimSpace(m[0])
	}
	return ""
}

var positionRegex = regexp.MustCompile(`(?i)\b(` +
	`GK|G|GOALKEEPER|` +
	`D|DEF|DF|DEFENDER|B|BACK|CB|LB|RB|LCB|RCB|FB|LWB|RWB|` +
	`M|MF|MID|MIDFIELDER|CM|CDM|CAM|DM|AM|LM|RM|` +
	`F|FW|FOR|FORWARD|ST|STRIKER|A|ATT|ATTACKER|W|WING|WINGER|LW|RW` +
	`)\b`)

var positionCodes = map[string]string{
	"GK": "GK", "G": "GK", "GOALKEEPER": "GK",
	"D": "D", "DEF": "D", "DF": "D", "DEFENDER": "D", "B": "D", "BACK": "D",
	"CB": "D", "LB": "D", "RB": "D", "LCB": "D", "RCB": "D", "FB": "D", "LWB": "D", "RWB": "D",
	"M": "M", "MF": "M", "MID": "M", "MIDFIELDER": "M",
	"CM": "M", "CDM": "M", "CAM": "M", "DM": "M", "AM": "M", "LM": "M", "RM": "M",
	"F": "F", "FW": "F", "FOR": "F", "FORWARD": "F", "ST": "F", "STRIKER": "F",
	"A": "F", "ATT": "F", "ATTACKER": "F", "W": "F", "WING": "F", "WINGER": "F",
	"LW": "F", "RW": "F",
}

// Position normalizes a position fragment into one of GK, D, M, F or
// the empty string. Ambiguous labels resolve to their most common
// sense on real rosters, e.g. Winger is a forward here.
func Position(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	m := positionRegex.FindStringSubmatch(text)
	if m != nil {
		if code, ok := positionCodes[strings.ToUpper(m[1])]; ok {
			return code
		}
	}

	// substring fallback on full words
	upper := strings.ToUpper(text)
	switch {
	case strings.Contains(upper, "GOALKEEPER"),
		strings.Contains(upper, "GOALIE"),
		strings.Contains(upper, "KEEPER"):
		return "GK"
	case strings.Contains(upper, "DEFENDER"),
		strings.Contains(upper, "DEFENCE"),
		strings.Contains(upper, "DEFENSE"),
		strings.Contains(upper, "BACK"):
		return "D"
	case strings.Contains(upper, "MIDFIELD"):
		return "M"
	case strings.Contains(upper, "FORWARD"),
		strings.Contains(upper, "STRIKER"),
		strings.Contains(upper, "ATTACK"):
		return "F"
	}
	return ""
}

var academicYears = map[string]string{
	"Fr": "Freshman", "Fr.": "Freshman", "FR": "Freshman",
	"So": "Sophomore", "So.": "Sophomore", "SO": "Sophomore",
	"Jr": "Junior", "Jr.": "Junior", "JR": "Junior",
	"Sr": "Senior", "Sr.": "Senior", "SR": "Senior",
	"Gr": "Graduate", "Gr.": "Graduate", "GR": "Graduate",
	"R-Fr": "Redshirt Freshman", "R-Fr.": "Redshirt Freshman",
	"R-So": "Redshirt Sophomore", "R-So.": "Redshirt Sophomore",
	"R-Jr": "Redshirt Junior", "R-Jr.": "Redshirt Junior",
	"R-Sr": "Redshirt Senior", "R-Sr.": "Redshirt Senior",
	"1st": "Freshman", "First": "Freshman",
	"2nd": "Sophomore", "Second": "Sophomore",
	"3rd": "Junior", "Third": "Junior",
	"4th": "Senior", "Fourth": "Senior",
}

// AcademicYear expands class abbreviations (Jr., R-So, 3rd) to their
// long form. Unrecognized input passes through unchanged so sites
// that already spell out "Freshman" are preserved.
func AcademicYear(text string) string {
	if text == "" {
		return ""
	}
	if long, ok := academicYears[strings.TrimSpace(text)]; ok {
		return long
	}
	return text
}

// IsAcademicYear reports whether text already is a class designation,
// abbreviated or long form. Used when a class shares one element with
// other fields and has to be picked out of the fragments.
func IsAcademicYear(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if _, ok := academicYears[text]; ok {
		return true
	}
	for _, long := range academicYears {
		if strings.EqualFold(text, long) {
			return true
		}
	}
	return strings.EqualFold(text, "Fifth Year")
}

var trailingNoiseRegex = regexp.MustCompile(`\s*(Full Bio|Instagram|Twitter|Opens in a new window).*$`)

var collegeIndicators = []string{"University", "College", "State", "Tech", "Institute"}

func isCollege(s string) bool {
	for _, indicator := range collegeIndicators {
		if strings.Contains(s, indicator) {
			return true
		}
	}
	return false
}

// SplitHometown splits combined "City, ST / High School / Previous College"
// text into its components. The second segment is classified as a
// previous school when it carries a college indicator keyword, a third
// segment always is.
func SplitHometown(text string) (hometown, highSchool, previousSchool string) {
	if text == "" {
		return "", "", ""
	}

	text = trailingNoiseRegex.ReplaceAllString(text, "")
	text = strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))

	if !strings.Contains(text, "/") {
		return text, "", ""
	}

	parts := strings.Split(text, "/")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	hometown = parts[0]
	if len(parts) > 1 {
		if isCollege(parts[1]) {
			previousSchool = parts[1]
		} else {
			highSchool = parts[1]
		}
	}
	if len(parts) > 2 {
		previousSchool = parts[2]
	}
	return hometown, highSchool, previousSchool
}

// SplitParenSchool handles the "Northern Guilford High School (USC Upstate)"
// shape some list rosters use, where a previous college rides along in
// parentheses after the high school name.
func SplitParenSchool(text string) (highSchool, previousSchool string) {
	open := strings.Index(text, "(")
	closing := strings.Index(text, ")")
	if open < 0 || closing < open {
		return text, ""
	}

	main := strings.TrimSpace(text[:open])
	paren := strings.TrimSpace(text[open+1 : closing])

	if isCollege(paren) || strings.Contains(paren, "Univ") {
		return main, paren
	}
	if main == "" {
		return paren, ""
	}
	return main, ""
}

var labelPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bClass:\s*`),
	regexp.MustCompile(`(?i)\bHometown:\s*`),
	regexp.MustCompile(`(?i)\bHigh school:\s*`),
	regexp.MustCompile(`(?i)\bPrevious College:\s*`),
	regexp.MustCompile(`(?i)\bPrevious School:\s*`),
	regexp.MustCompile(`(?i)\bHt\.?:\s*`),
	regexp.MustCompile(`(?i)\bPos\.?:\s*`),
	regexp.MustCompile(`(?i)\bMajor:\s*`),
	regexp.MustCompile(`(?i)^No\.?:\s*`),
}

// Clean collapses whitespace, trims, and strips trailing UI noise and
// labelled prefixes ("Hometown: ...") that sites dump into cells.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	cleaned := strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
	cleaned = trailingNoiseRegex.ReplaceAllString(cleaned, "")
	for _, p := range labelPrefixes {
		cleaned = strings.TrimSpace(p.ReplaceAllString(cleaned, ""))
	}
	return cleaned
}
