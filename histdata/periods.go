package histdata

import "time"

// Period marks a span of years that skews what the bank was doing at the
// time.
type Period struct {
	Start       time.Time
	End         time.Time
	Description string
}

// Contains reports whether the date falls inside the period, inclusive on
// both ends.
func (p Period) Contains(date time.Time) bool {
	return !date.Before(p.Start) && !date.After(p.End)
}

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

var (
	WesternSchism = Period{
		Start:       day(1390, time.January, 1),
		End:         day(1417, time.December, 31),
		Description: "Western Schism period with papal banking opportunities",
	}

	PapalBankingBoom = Period{
		Start:       day(1410, time.January, 1),
		End:         day(1430, time.December, 31),
		Description: "Peak papal banking period after John XXIII appointment",
	}

	FirstMilaneseWar = Period{
		Start:       day(1390, time.January, 1),
		End:         day(1402, time.September, 3),
		Description: "First Florentine-Milanese War under Gian Galeazzo",
	}

	CouncilOfConstance = Period{
		Start:       day(1414, time.November, 16),
		End:         day(1418, time.April, 22),
		Description: "Council of Constance and John XXIII ransom",
	}

	SecondMilaneseWar = Period{
		Start:       day(1422, time.January, 1),
		End:         day(1426, time.December, 31),
		Description: "Second Florentine-Milanese War",
	}

	LombardyWars = Period{
		Start:       day(1423, time.January, 1),
		End:         day(1440, time.December, 31),
		Description: "Wars in Lombardy between Venice and Milan",
	}

	CosimoExile = Period{
		Start:       day(1433, time.September, 7),
		End:         day(1434, time.October, 6),
		Description: "Cosimo's exile to Venice and return",
	}
)

// warPeriods boost the share of war financing while active.
var warPeriods = []Period{FirstMilaneseWar, SecondMilaneseWar, LombardyWars}
