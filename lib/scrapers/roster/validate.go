package roster

import (
	"context"
	"log/slog"
)

// FieldCoverage holds the per-field fill percentages the validator
// decides on. Previous school and major are deliberately excluded:
// many sites legitimately never carry them.
type FieldCoverage struct {
	Name     float64
	Jersey   float64
	Position float64
	Year     float64
	Total    int
}

// Coverage computes the percentage of records with a non-empty value
// for each essential field.
func Coverage(players []Player) FieldCoverage {
	c := FieldCoverage{Total: len(players)}
	if c.Total == 0 {
		return c
	}
	for _, p := range players {
		if p.Name != "" {
			c.Name++
		}
		if p.Jersey != "" {
			c.Jersey++
		}
		if p.Position != "" {
			c.Position++
		}
		if p.Year != "" {
			c.Year++
		}
	}
	total := float64(c.Total)
	c.Name = c.Name / total * 100
	c.Jersey = c.Jersey / total * 100
	c.Position = c.Position / total * 100
	c.Year = c.Year / total * 100
	return c
}

// Validate decides whether an extraction attempt is good enough to
// accept, or whether the orchestrator should keep walking the
// alternate-URL ladder.
//
// Name coverage must reach 80%. Jersey must reach 80%, relaxed to 50%
// for rosters of 15+ records since list layouts omit some badges.
// Position and year must each reach 70%; for 15+ records it is enough
// that either reaches 50%, and as a last resort a 15+ roster with
// name >= 80% and jersey >= 50% passes on those two fields alone.
func Validate(ctx context.Context, players []Player, teamName string) bool {
	if len(players) == 0 {
		return false
	}
	c := Coverage(players)
	large := c.Total >= 15

	if c.Name < 80 {
		slog.WarnContext(ctx, "validation failed on name coverage",
			"team", teamName, "name", c.Name)
		return false
	}
	if c.Jersey < 80 && !(large && c.Jersey >= 50) {
		slog.WarnContext(ctx, "validation failed on jersey coverage",
			"team", teamName, "jersey", c.Jersey)
		return false
	}
	if c.Position >= 70 && c.Year >= 70 {
		return true
	}
	if large && (c.Position >= 50 || c.Year >= 50) {
		return true
	}
	if large && c.Jersey >= 50 {
		slog.InfoContext(ctx, "accepting roster on name/jersey fallback",
			"team", teamName, "position", c.Position, "year", c.Year)
		return true
	}
	slog.WarnContext(ctx, "validation failed on position/year coverage",
		"team", teamName, "position", c.Position, "year", c.Year)
	return false
}
