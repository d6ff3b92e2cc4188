package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campusfleet/reservation-service/internal/model"
	"github.com/campusfleet/reservation-service/internal/schedule"
)

func date(day int) model.Date {
	return model.NewDate(2024, time.July, day)
}

func window(start, end int) model.Window {
	return model.Window{Start: date(start), End: date(end)}
}

func TestCheck_RoundTrip(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name       string
		start, end model.Date
		existing   []model.Window
		available  bool
		conflicts  []model.Window
		message    string
	}{
		{
			name:      "no existing reservations",
			start:     date(10),
			end:       date(12),
			available: true,
			message:   "Bus is available from 2024-07-10 to 2024-07-12",
		},
		{
			name:      "disjoint windows",
			start:     date(10),
			end:       date(12),
			existing:  []model.Window{window(1, 5), window(20, 25)},
			available: true,
			message:   "Bus is available from 2024-07-10 to 2024-07-12",
		},
		{
			name:      "existing departure inside request",
			start:     date(10),
			end:       date(14),
			existing:  []model.Window{window(12, 20)},
			conflicts: []model.Window{window(12, 20)},
			message:   "Bus is already booked on: 2024-07-12 to 2024-07-20",
		},
		{
			name:      "existing return inside request",
			start:     date(10),
			end:       date(14),
			existing:  []model.Window{window(5, 11)},
			conflicts: []model.Window{window(5, 11)},
			message:   "Bus is already booked on: 2024-07-05 to 2024-07-11",
		},
		{
			name:      "existing fully contains request",
			start:     date(10),
			end:       date(12),
			existing:  []model.Window{window(5, 20)},
			conflicts: []model.Window{window(5, 20)},
			message:   "Bus is already booked on: 2024-07-05 to 2024-07-20",
		},
		{
			name:      "request end equals existing start",
			start:     date(5),
			end:       date(10),
			existing:  []model.Window{window(10, 12)},
			conflicts: []model.Window{window(10, 12)},
			message:   "Bus is already booked on: 2024-07-10 to 2024-07-12",
		},
		{
			name:      "request start equals existing end",
			start:     date(12),
			end:       date(15),
			existing:  []model.Window{window(10, 12)},
			conflicts: []model.Window{window(10, 12)},
			message:   "Bus is already booked on: 2024-07-10 to 2024-07-12",
		},
		{
			name:      "conflicts keep reservation order",
			start:     date(1),
			end:       date(31),
			existing:  []model.Window{window(3, 4), window(10, 12), window(20, 20)},
			conflicts: []model.Window{window(3, 4), window(10, 12), window(20, 20)},
			message:   "Bus is already booked on: 2024-07-03 to 2024-07-04, 2024-07-10 to 2024-07-12, 2024-07-20",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := schedule.Check(tt.start, tt.end, tt.existing)
			require.Equal(t, tt.available, result.Available)
			require.Equal(t, tt.conflicts, result.Conflicts)
			require.Equal(t, tt.message, result.Message)
		})
	}
}

func TestCheck_SingleDay(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name      string
		day       model.Date
		existing  []model.Window
		available bool
		message   string
	}{
		{
			name:      "free date",
			day:       date(9),
			existing:  []model.Window{window(10, 12)},
			available: true,
			message:   "Bus is available on 2024-07-09",
		},
		{
			name:     "date inside existing window",
			day:      date(11),
			existing: []model.Window{window(10, 12)},
			message:  "Bus is already booked on: 2024-07-10 to 2024-07-12",
		},
		{
			name:     "date equals existing start",
			day:      date(10),
			existing: []model.Window{window(10, 12)},
			message:  "Bus is already booked on: 2024-07-10 to 2024-07-12",
		},
		{
			name:     "date equals existing end",
			day:      date(12),
			existing: []model.Window{window(10, 12)},
			message:  "Bus is already booked on: 2024-07-10 to 2024-07-12",
		},
		{
			name:     "existing single-day reservation without distinct return",
			day:      date(10),
			existing: []model.Window{model.NewWindow(date(10), nil)},
			message:  "Bus is already booked on: 2024-07-10",
		},
		{
			name:      "day after existing end",
			day:       date(13),
			existing:  []model.Window{window(10, 12)},
			available: true,
			message:   "Bus is available on 2024-07-13",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := schedule.Check(tt.day, tt.day, tt.existing)
			require.Equal(t, tt.available, result.Available)
			require.Equal(t, tt.message, result.Message)
		})
	}
}

// The round-trip and single-day paths are separate on purpose; this
// pins their behavior at the exact shared boundary so a future merge
// cannot silently change outcomes.
func TestCheck_BoundaryAgreement(t *testing.T) {
	t.Parallel()
	existing := []model.Window{window(10, 12)}

	single := schedule.Check(date(12), date(12), existing)
	require.False(t, single.Available)

	round := schedule.Check(date(12), date(13), existing)
	require.False(t, round.Available)

	afterSingle := schedule.Check(date(13), date(13), existing)
	require.True(t, afterSingle.Available)

	afterRound := schedule.Check(date(13), date(14), existing)
	require.True(t, afterRound.Available)
}
