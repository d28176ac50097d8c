package computed

import (
	"time"

	"panelbox/internal/metadata"
)

// deriveDate keeps the full cover date and its year/month/day parts
// consistent. A full date fills in missing parts; parts with at least a
// year assemble a full date, with missing month and day floored to 1.
// Parts that cannot form a real calendar date are marked for deletion.
func deriveDate(env *Env, current metadata.Record) metadata.Record {
	date := current.Sub(metadata.DateKey)
	if len(date) == 0 {
		return nil
	}
	if cover, ok := date.Time(metadata.CoverDateKey); ok && !cover.IsZero() {
		sub := metadata.Record{}
		if _, ok := date.Int(metadata.YearKey); !ok {
			sub[metadata.YearKey] = cover.Year()
		}
		if _, ok := date.Int(metadata.MonthKey); !ok {
			sub[metadata.MonthKey] = int(cover.Month())
		}
		if _, ok := date.Int(metadata.DayKey); !ok {
			sub[metadata.DayKey] = cover.Day()
		}
		if len(sub) == 0 {
			return nil
		}
		return metadata.Record{metadata.DateKey: sub}
	}

	year, ok := date.Int(metadata.YearKey)
	if !ok {
		return nil
	}
	sub := metadata.Record{}
	month := 1
	if declared, ok := date.Int(metadata.MonthKey); ok {
		if declared < 1 || declared > 12 {
			env.markDelete("date.month")
		} else {
			month = declared
		}
	} else {
		sub[metadata.MonthKey] = month
	}
	day := 1
	if declared, ok := date.Int(metadata.DayKey); ok {
		if declared < 1 || declared > daysIn(year, month) {
			env.markDelete("date.day")
		} else {
			day = declared
		}
	} else {
		sub[metadata.DayKey] = day
	}
	sub[metadata.CoverDateKey] = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return metadata.Record{metadata.DateKey: sub}
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
