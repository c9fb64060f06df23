package recurrence

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/duetdiary/internal/common"
	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/dmitrijs2005/duetdiary/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) *int { return &n }

func date(t *testing.T, s string) timex.Date {
	t.Helper()
	d, err := timex.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestNext_Monthly(t *testing.T) {
	rule := Monthly{Day: 15}

	assert.Equal(t, date(t, "2024-07-15"), Next(rule, date(t, "2024-06-20")))
	assert.Equal(t, date(t, "2024-06-15"), Next(rule, date(t, "2024-06-10")))
	assert.Equal(t, date(t, "2024-06-15"), Next(rule, date(t, "2024-06-15")), "today counts")
	assert.Equal(t, date(t, "2025-01-15"), Next(rule, date(t, "2024-12-16")), "rolls into next year")
}

func TestNext_Quarterly(t *testing.T) {
	rule := Quarterly{Day: 1, Months: DefaultQuarterlyMonths}

	assert.Equal(t, date(t, "2024-07-01"), Next(rule, date(t, "2024-04-02")))
	assert.Equal(t, date(t, "2024-04-01"), Next(rule, date(t, "2024-04-01")))
	assert.Equal(t, date(t, "2025-01-01"), Next(rule, date(t, "2024-10-02")))
}

func TestNext_SemiAnnualCustomMonths(t *testing.T) {
	rule := SemiAnnual{Day: 10, Months: []time.Month{time.March, time.September}}

	assert.Equal(t, date(t, "2024-09-10"), Next(rule, date(t, "2024-03-11")))
	assert.Equal(t, date(t, "2025-03-10"), Next(rule, date(t, "2024-09-11")))
}

func TestNext_SpecificDate(t *testing.T) {
	rule := SpecificDate{Date: date(t, "2019-08-03")}

	assert.Equal(t, date(t, "2024-08-03"), Next(rule, date(t, "2024-01-01")))
	assert.Equal(t, date(t, "2024-08-03"), Next(rule, date(t, "2024-08-03")))
	assert.Equal(t, date(t, "2025-08-03"), Next(rule, date(t, "2024-08-04")))
}

func TestNext_SpecificDateLeapDay(t *testing.T) {
	rule := SpecificDate{Date: date(t, "2020-02-29")}

	assert.Equal(t, date(t, "2025-02-28"), Next(rule, date(t, "2025-02-01")))
	assert.Equal(t, date(t, "2028-02-29"), Next(rule, date(t, "2028-02-29")))
	assert.True(t, Matches(rule, date(t, "2025-02-28")))
	assert.False(t, Matches(rule, date(t, "2024-02-28")))
}

func TestMatches_AgreesWithNext(t *testing.T) {
	rules := []Rule{
		Monthly{Day: 28},
		Quarterly{Day: 5, Months: DefaultQuarterlyMonths},
		SemiAnnual{Day: 20, Months: DefaultSemiAnnualMonths},
		SpecificDate{Date: date(t, "2021-12-31")},
	}

	start := date(t, "2024-01-01")
	for _, rule := range rules {
		for i := 0; i < 800; i++ {
			today := start.AddDays(i)
			assert.Equal(t, Next(rule, today) == today, Matches(rule, today), "%T on %s", rule, today)
		}
	}
}

func TestFromConfig(t *testing.T) {
	specific := date(t, "2020-05-05")

	tests := []struct {
		name    string
		cfg     models.CheckpointConfig
		want    Rule
		wantErr bool
	}{
		{name: "monthly", cfg: models.CheckpointConfig{Frequency: models.FrequencyMonthly, DayOfMonth: day(3)}, want: Monthly{Day: 3}},
		{name: "quarterly default months", cfg: models.CheckpointConfig{Frequency: models.FrequencyQuarterly, DayOfMonth: day(1)},
			want: Quarterly{Day: 1, Months: DefaultQuarterlyMonths}},
		{name: "semi annual sorted months", cfg: models.CheckpointConfig{Frequency: models.FrequencySemiAnnual, DayOfMonth: day(2),
			Months: []time.Month{time.December, time.June, time.June}},
			want: SemiAnnual{Day: 2, Months: []time.Month{time.June, time.December}}},
		{name: "specific", cfg: models.CheckpointConfig{Frequency: models.FrequencySpecificDate, SpecificDate: &specific},
			want: SpecificDate{Date: specific}},
		{name: "monthly without day", cfg: models.CheckpointConfig{Frequency: models.FrequencyMonthly}, wantErr: true},
		{name: "day 29 rejected", cfg: models.CheckpointConfig{Frequency: models.FrequencyMonthly, DayOfMonth: day(29)}, wantErr: true},
		{name: "day 0 rejected", cfg: models.CheckpointConfig{Frequency: models.FrequencyQuarterly, DayOfMonth: day(0)}, wantErr: true},
		{name: "bad month", cfg: models.CheckpointConfig{Frequency: models.FrequencyQuarterly, DayOfMonth: day(1), Months: []time.Month{13}}, wantErr: true},
		{name: "specific without date", cfg: models.CheckpointConfig{Frequency: models.FrequencySpecificDate}, wantErr: true},
		{name: "unknown frequency", cfg: models.CheckpointConfig{Frequency: "weekly", DayOfMonth: day(1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromConfig(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextCheckpointDate_Soonest(t *testing.T) {
	today := date(t, "2024-06-01")
	configs := []models.CheckpointConfig{
		{ID: "a", Frequency: models.FrequencyMonthly, DayOfMonth: day(20), IsActive: true},
		{ID: "b", Frequency: models.FrequencyMonthly, DayOfMonth: day(10), IsActive: true},
	}

	next, ok := NextCheckpointDate(configs, today)
	require.True(t, ok)
	assert.Equal(t, date(t, "2024-06-10"), next)
}

func TestNextCheckpointDate_SkipsInactiveAndInvalid(t *testing.T) {
	today := date(t, "2024-06-01")
	configs := []models.CheckpointConfig{
		{ID: "inactive", Frequency: models.FrequencyMonthly, DayOfMonth: day(2), IsActive: false},
		{ID: "broken", Frequency: models.FrequencyMonthly, IsActive: true},
		{ID: "ok", Frequency: models.FrequencyMonthly, DayOfMonth: day(25), IsActive: true},
	}

	next, ok := NextCheckpointDate(configs, today)
	require.True(t, ok)
	assert.Equal(t, date(t, "2024-06-25"), next)

	_, ok = NextCheckpointDate(nil, today)
	assert.False(t, ok)

	_, ok = NextCheckpointDate(configs[:1], today)
	assert.False(t, ok)
}

func TestMatchingConfigs(t *testing.T) {
	specific := date(t, "2018-06-15")
	configs := []models.CheckpointConfig{
		{ID: "monthly-15", Frequency: models.FrequencyMonthly, DayOfMonth: day(15), IsActive: true},
		{ID: "monthly-16", Frequency: models.FrequencyMonthly, DayOfMonth: day(16), IsActive: true},
		{ID: "quarterly-15", Frequency: models.FrequencyQuarterly, DayOfMonth: day(15), IsActive: true},
		{ID: "specific", Frequency: models.FrequencySpecificDate, SpecificDate: &specific, IsActive: true},
		{ID: "inactive", Frequency: models.FrequencyMonthly, DayOfMonth: day(15)},
	}

	matched := MatchingConfigs(configs, date(t, "2024-06-15"))

	var ids []string
	for _, c := range matched {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"monthly-15", "specific"}, ids)
}
