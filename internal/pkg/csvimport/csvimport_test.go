package csvimport_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleet-logistics-service/internal/pkg/csvimport"
)

func TestRead_ParsesRowsByHeader(t *testing.T) {
	src := "Id,Demand,StartDateTime,MaxBarge\n" +
		"ORD1,1200.5,2024-03-01 08:00:00,3\n" +
		"\n" +
		"ORD2,80,2024-03-02T10:30:00Z,4.0\n"

	var ids []string
	var demands []float64
	var starts []time.Time
	var barges []int

	issues, err := csvimport.Read(strings.NewReader(src), func(row *csvimport.Row) error {
		ids = append(ids, row.String("id"))
		demands = append(demands, row.Float("Demand"))
		starts = append(starts, row.Time("StartDateTime"))
		barges = append(barges, row.Int("MaxBarge"))
		return nil
	})

	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, []string{"ORD1", "ORD2"}, ids)
	assert.Equal(t, []float64{1200.5, 80}, demands)
	assert.Equal(t, []int{3, 4}, barges)
	assert.Equal(t, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), starts[0])
	assert.Equal(t, time.Date(2024, 3, 2, 10, 30, 0, 0, time.UTC), starts[1])
}

func TestRead_CoercesBadValuesToZeroWithIssues(t *testing.T) {
	src := "Id,Demand,DueDateTime\nORD1,abc,tomorrow\nORD2,,2024-01-01\n"

	var demands []float64
	issues, err := csvimport.Read(strings.NewReader(src), func(row *csvimport.Row) error {
		demands = append(demands, row.Float("Demand"))
		row.Time("DueDateTime")
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, demands)
	require.Len(t, issues, 3)
	assert.Equal(t, 2, issues[0].Line)
	assert.Equal(t, "Demand", issues[0].Column)
	assert.Equal(t, "not a number", issues[0].Reason)
	assert.Equal(t, "not a date", issues[1].Reason)
	assert.Equal(t, "empty value", issues[2].Reason)
	assert.Equal(t, 3, issues[2].Line)
}

func TestRead_StreamErrorFailsWholeFile(t *testing.T) {
	src := "Id,Demand\nORD1,1\nORD2,2,extra\n"

	calls := 0
	_, err := csvimport.Read(strings.NewReader(src), func(row *csvimport.Row) error {
		calls++
		return nil
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRead_EmptyFile(t *testing.T) {
	_, err := csvimport.Read(strings.NewReader(""), func(*csvimport.Row) error { return nil })
	assert.ErrorIs(t, err, csvimport.ErrEmptyFile)
}
