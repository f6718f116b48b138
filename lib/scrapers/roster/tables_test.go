package roster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapHeaderText(t *testing.T) {
	testCases := []struct {
		header   string
		expected string
	}{
		{"Name", colName},
		{"Full Name", colName},
		{"No.", colJersey},
		{"#", colJersey},
		{"Pos.", colPosition},
		{"Position", colPosition},
		{"Ht.", colHeight},
		{"Cl.", colYear},
		{"Academic Year", colYear},
		{"Hometown", colHometown},
		{"High School", colHighSchool},
		{"Previous School", colPreviousSchool},
		// typo'd headers rescued by the fuzzy fallback
		{"Nmae", colName},
		{"Heigth", colHeight},
		{"Hmetown", colHometown},
		{"Twitter", ""},
		{"", ""},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, mapHeaderText(tc.header), "header: %q", tc.header)
	}
}

func TestDataFieldTable(t *testing.T) {
	page := makePage(t, `
<table>
  <thead><tr>
    <th data-field-label="No.">No.</th>
    <th data-field-label="Name">Name</th>
    <th data-field-label="Pos.">Pos.</th>
    <th data-field-label="Cl.">Cl.</th>
    <th data-field-label="Ht.">Ht.</th>
    <th data-field-label="Hometown">Hometown</th>
    <th data-field-label="High School">High School</th>
  </tr></thead>
  <tbody>
    <tr>
      <td>00</td>
      <td><a href="/roster/kat-kerr">Kat Kerr</a></td>
      <td>GK</td>
      <td>Fr.</td>
      <td>5-11</td>
      <td>Seattle, Wash.</td>
      <td>Ballard</td>
    </tr>
    <tr><td colspan="7">&nbsp;</td></tr>
  </tbody>
</table>`)
	require.True(t, dataFieldTable{}.Detect(page))

	players := dataFieldTable{}.Extract(context.Background(), page, testTeam)
	require.Len(t, players, 1)

	p := players[0]
	require.Equal(t, "Kat Kerr", p.Name)
	require.Equal(t, "00", p.Jersey)
	require.Equal(t, "GK", p.Position)
	require.Equal(t, "Freshman", p.Year)
	require.Equal(t, "5-11", p.Height)
	require.Equal(t, "Seattle, Wash.", p.Hometown)
	require.Equal(t, "Ballard", p.HighSchool)
	require.Equal(t, "https://goheels.com/roster/kat-kerr", p.URL)
}

func TestPlayersTable(t *testing.T) {
	page := makePage(t, `
<table id="players-table-23">
  <thead><tr>
    <th>#</th><th>Name</th><th>Position</th><th>Height</th><th>Class</th><th>Hometown</th>
  </tr></thead>
  <tbody>
    <tr>
      <td>12</td>
      <td><a href="/roster/lena-ortiz">Lena Ortiz</a></td>
      <td>Defender</td>
      <td>5'8"</td>
      <td>R-So.</td>
      <td>El Paso, Texas / Franklin</td>
    </tr>
  </tbody>
</table>`)
	require.True(t, playersTable{}.Detect(page))

	players := playersTable{}.Extract(context.Background(), page, testTeam)
	require.Len(t, players, 1)

	p := players[0]
	require.Equal(t, "Lena Ortiz", p.Name)
	require.Equal(t, "12", p.Jersey)
	require.Equal(t, "D", p.Position)
	require.Equal(t, "5'8\"", p.Height)
	require.Equal(t, "Redshirt Sophomore", p.Year)
	require.Equal(t, "El Paso, Texas", p.Hometown)
	require.Equal(t, "Franklin", p.HighSchool)
}

func TestDispatchEmptyPlayersTableShell(t *testing.T) {
	// an un-rendered DataTables page ships the table element with no
	// rows at all; it must yield zero records, not crash
	page := makePage(t, `<html><body><table id="players-table"></table></body></html>`)
	d := NewDispatcher(nil)

	outcome := d.Dispatch(context.Background(), page, testTeam)
	require.Equal(t, "players-table", outcome.Format)
	require.Empty(t, outcome.Players)
}

func TestModRosterTable(t *testing.T) {
	page := makePage(t, `
<div class="mod-roster">
<table>
  <thead><tr>
    <th><button aria-label="Number">No</button></th>
    <th><button aria-label="Name">Full Name</button></th>
    <th><button aria-label="Position">Pos</button></th>
    <th><button aria-label="Class">Cl</button></th>
  </tr></thead>
  <tbody>
    <tr>
      <td>14</td>
      <td><a href="/roster/ana-silva">Ana Silva</a></td>
      <td>Midfielder</td>
      <td>So.</td>
    </tr>
  </tbody>
</table>
</div>`)
	require.True(t, modRosterTable{}.Detect(page))

	players := modRosterTable{}.Extract(context.Background(), page, testTeam)
	require.Len(t, players, 1)

	p := players[0]
	require.Equal(t, "Ana Silva", p.Name)
	require.Equal(t, "14", p.Jersey)
	require.Equal(t, "M", p.Position)
	require.Equal(t, "Sophomore", p.Year)
}

func TestPrestoTable(t *testing.T) {
	page := makePage(t, `
<table>
  <tbody>
    <tr>
      <th data-label="Name"><a href="/roster/zoe-park">Zoe Park</a></th>
      <td data-label="No.">9</td>
      <td data-label="Pos.">F</td>
      <td data-label="Cl.">Jr.</td>
      <td data-label="Ht.">5-4</td>
      <td data-label="Hometown/Last School">Portland, Ore./Grant</td>
    </tr>
    <tr>
      <td data-label="Staff">Head Coach</td>
    </tr>
  </tbody>
</table>`)
	require.True(t, prestoTable{}.Detect(page))

	players := prestoTable{}.Extract(context.Background(), page, testTeam)
	require.Len(t, players, 1)

	p := players[0]
	require.Equal(t, "Zoe Park", p.Name)
	require.Equal(t, "9", p.Jersey)
	require.Equal(t, "F", p.Position)
	require.Equal(t, "Junior", p.Year)
	require.Equal(t, "5-4", p.Height)
	require.Equal(t, "Portland, Ore.", p.Hometown)
	require.Equal(t, "Grant", p.HighSchool)
	require.Equal(t, "https://goheels.com/roster/zoe-park", p.URL)
}

func TestGenericTableSidearmRowsSkipHiddenCells(t *testing.T) {
	page := makePage(t, `
<table>
  <thead><tr>
    <th class="s-table-header__column">#</th>
    <th class="s-table-header__column">Name</th>
    <th class="s-table-header__column">Pos.</th>
    <th class="s-table-header__column">Class</th>
  </tr></thead>
  <tbody>
    <tr class="s-table-body__row">
      <td>5</td>
      <td class="d-md-none">5 Mia Chen F Sr.</td>
      <td><a href="/roster/mia-chen">Mia Chen</a></td>
      <td>F</td>
      <td>Sr.</td>
    </tr>
  </tbody>
</table>`)
	require.True(t, genericTable{}.Detect(page))

	players := genericTable{}.Extract(context.Background(), page, testTeam)
	require.Len(t, players, 1)

	p := players[0]
	require.Equal(t, "Mia Chen", p.Name)
	require.Equal(t, "5", p.Jersey)
	require.Equal(t, "F", p.Position)
	require.Equal(t, "Senior", p.Year)
}
