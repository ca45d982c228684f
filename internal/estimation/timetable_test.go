package estimation

import (
	"testing"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapBandToTime_Medium(t *testing.T) {
	assert.Equal(t, TimeEstimate{FocusWeeks: 2, WorkWeeks: 4}, MapBandToTime(domain.BandM, domain.RoleUX))
	assert.Equal(t, TimeEstimate{FocusWeeks: 1.5, WorkWeeks: 3}, MapBandToTime(domain.BandM, domain.RoleContent))
}

// The literal tables are pinned here so any edit to them is deliberate.
func TestDefaultTimeTables_Pinned(t *testing.T) {
	assert.Equal(t, TimeTable{
		domain.BandXS: {0.5, 1},
		domain.BandS:  {1, 2},
		domain.BandM:  {2, 4},
		domain.BandL:  {4, 8},
		domain.BandXL: {8, 16},
	}, DefaultTimeTable(domain.RoleUX))
	assert.Equal(t, TimeTable{
		domain.BandXS: {0.25, 0.5},
		domain.BandS:  {0.5, 1},
		domain.BandM:  {1.5, 3},
		domain.BandL:  {3, 6},
		domain.BandXL: {6, 12},
	}, DefaultTimeTable(domain.RoleContent))
}

func TestDefaultTimeTable_IsACopy(t *testing.T) {
	tbl := DefaultTimeTable(domain.RoleUX)
	tbl[domain.BandM] = TimeEstimate{FocusWeeks: 99}
	assert.Equal(t, 2.0, MapBandToTime(domain.BandM, domain.RoleUX).FocusWeeks)
}

func TestMapBandToTime_UnknownBand(t *testing.T) {
	assert.Equal(t, TimeEstimate{}, MapBandToTime("XXL", domain.RoleUX))
}

func TestDeriveWorkWeeks(t *testing.T) {
	assert.Equal(t, 4.0, DeriveWorkWeeks(3, 0.75))
	assert.Equal(t, 2.7, DeriveWorkWeeks(2, 0.75))
	assert.Equal(t, 5.0, DeriveWorkWeeks(2, 0.4))
	assert.Equal(t, 2.7, DeriveWorkWeeks(2, 0), "non-positive ratio falls back to default")
}

func TestTimeTableLookup_DerivesMissingWorkWeeks(t *testing.T) {
	tbl := TimeTable{domain.BandS: {FocusWeeks: 1.5}}
	te, ok := tbl.Lookup(domain.BandS, 0.5)
	require.True(t, ok)
	assert.Equal(t, TimeEstimate{FocusWeeks: 1.5, WorkWeeks: 3}, te)

	_, ok = tbl.Lookup(domain.BandL, 0.5)
	assert.False(t, ok)
}

func TestClampFocusTimeRatio(t *testing.T) {
	assert.Equal(t, 0.4, ClampFocusTimeRatio(0.1))
	assert.Equal(t, 0.9, ClampFocusTimeRatio(1.5))
	assert.Equal(t, 0.6, ClampFocusTimeRatio(0.6))
}
