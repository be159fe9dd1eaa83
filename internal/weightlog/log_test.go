package weightlog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestAppend_FirstEntry(t *testing.T) {
	log, err := Append(nil, mustDate(t, "2024-01-01"), 70.0)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, "2024-01-01", log[0].Date.String())
	assert.Equal(t, 70.0, log[0].WeightKG)
}

func TestAppend_RejectsNonPositiveWeight(t *testing.T) {
	log, err := Append(nil, mustDate(t, "2024-01-01"), 70.0)
	require.NoError(t, err)

	for _, w := range []float64{-1, 0} {
		after, err := Append(log, mustDate(t, "2024-01-02"), w)
		assert.ErrorIs(t, err, ErrInvalidWeight)
		assert.Len(t, after, 1)
		assert.Len(t, log, 1)
	}
}

func TestAppend_KeepsDuplicateDates(t *testing.T) {
	d := mustDate(t, "2024-03-10")
	var log Log
	for _, w := range []float64{80, 79.5, 79.8} {
		var err error
		log, err = Append(log, d, w)
		require.NoError(t, err)
	}
	require.Len(t, log, 3)
	assert.Equal(t, []float64{80, 79.5, 79.8}, []float64{log[0].WeightKG, log[1].WeightKG, log[2].WeightKG})
}

func TestAppend_DoesNotAliasInput(t *testing.T) {
	base := make(Log, 1, 8)
	base[0] = Entry{Date: mustDate(t, "2024-01-01"), WeightKG: 70}

	a, err := Append(base, mustDate(t, "2024-01-02"), 71)
	require.NoError(t, err)
	b, err := Append(base, mustDate(t, "2024-01-03"), 72)
	require.NoError(t, err)

	assert.Equal(t, 71.0, a[1].WeightKG)
	assert.Equal(t, 72.0, b[1].WeightKG)
	assert.Len(t, base, 1)
}

func TestSeries_PreservesAppendOrder(t *testing.T) {
	var log Log
	for _, s := range []string{"2024-01-05", "2024-01-01", "2024-01-03"} {
		var err error
		log, err = Append(log, mustDate(t, s), 70)
		require.NoError(t, err)
	}

	series := Series(log)
	got := make([]string, len(series))
	for i, e := range series {
		got[i] = e.Date.String()
	}
	assert.Equal(t, []string{"2024-01-05", "2024-01-01", "2024-01-03"}, got)

	series[0].WeightKG = 1
	assert.Equal(t, 70.0, log[0].WeightKG)
}

func TestDate_JSON(t *testing.T) {
	e := Entry{Date: mustDate(t, "2024-02-29"), WeightKG: 65.5}
	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-02-29","weight_kg":65.5}`, string(b))

	var back Entry
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, e.Date.Equal(back.Date.Time))

	assert.Error(t, json.Unmarshal([]byte(`{"date":"29/02/2024"}`), &back))
}

func TestNewDate_DropsTimeOfDay(t *testing.T) {
	d := NewDate(time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2024-06-01", d.String())
	assert.Zero(t, d.Hour())
}

func TestNewDate_UsesLocalCalendarDayStoredAsUTC(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	// 2024-06-01 02:00 in UTC+9 is still 2024-05-31 in UTC.
	d := NewDate(time.Date(2024, 6, 1, 2, 0, 0, 0, tokyo))
	assert.Equal(t, "2024-06-01", d.String())
	assert.Equal(t, time.UTC, d.Location())
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.ScanDate(pgtype.Date{Time: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Valid: true}))
	assert.Equal(t, "2024-01-02", d.String())

	require.NoError(t, d.ScanDate(pgtype.Date{}))
	assert.True(t, d.IsZero())
}
