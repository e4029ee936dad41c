package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCostKey(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   CostKey
		wantOK bool
	}{
		{"simple key", "TUG1-ORD1", CostKey{TugboatID: "TUG1", OrderID: "ORD1"}, true},
		{"hyphen in order id stays with order", "TUG1-ORD-1", CostKey{TugboatID: "TUG1", OrderID: "ORD-1"}, true},
		{"hyphen in tugboat id splits early", "TUG-X-ORD1", CostKey{TugboatID: "TUG", OrderID: "X-ORD1"}, true},
		{"no separator", "TUG1", CostKey{}, false},
		{"empty tugboat", "-ORD1", CostKey{}, false},
		{"empty order", "TUG1-", CostKey{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCostKey(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCostKey_String(t *testing.T) {
	assert.Equal(t, "TUG1-ORD1", CostKey{TugboatID: "TUG1", OrderID: "ORD1"}.String())
}

func TestParseBargeIDs(t *testing.T) {
	assert.Equal(t, []string{}, ParseBargeIDs(""))
	assert.Equal(t, []string{"B1", "B2"}, ParseBargeIDs(`["B1","B2"]`))
	assert.Equal(t, []string{"B1", "B2", "B3"}, ParseBargeIDs("B1, B2,B3"))
	assert.Equal(t, []string{"B1", "B2"}, ParseBargeIDs("['B1', 'B2']"))
}

func TestParseTypes(t *testing.T) {
	wt, ok := ParseWaterType(" river ")
	assert.True(t, ok)
	assert.Equal(t, WaterRiver, wt)

	_, ok = ParseWaterType("lake")
	assert.False(t, ok)

	ot, ok := ParseOrderType("EXPORT")
	assert.True(t, ok)
	assert.Equal(t, OrderExport, ot)

	_, ok = ParseOrderType("transit")
	assert.False(t, ok)
}

func TestStationUsage_InUse(t *testing.T) {
	assert.False(t, StationUsage{}.InUse())
	assert.True(t, StationUsage{DestinationOrders: 1}.InUse())
	assert.True(t, StationUsage{CustomerLinks: 2}.InUse())
}

func TestPatchIsEmpty(t *testing.T) {
	assert.True(t, StationPatch{}.IsEmpty())
	assert.True(t, OrderPatch{}.IsEmpty())

	v := 1.0
	p := OrderPatch{}
	p.TimeReady[6] = &v
	assert.False(t, p.IsEmpty())
}

func TestNewFleetEvent(t *testing.T) {
	ev := NewFleetEvent(EntityStation, ActionDeleted, "STA1", "STA2")
	assert.NotEqual(t, [16]byte{}, [16]byte(ev.ID))
	assert.Equal(t, []string{"STA1", "STA2"}, ev.EntityIDs)
	assert.True(t, ev.TouchesStations())
	assert.False(t, NewFleetEvent(EntityBarge, ActionCreated, "B1").TouchesStations())
}
