package reports

import (
	"time"

	"github.com/outletaseo/outlet-api/internal/domain"
)

// PeriodKind identifica el tipo de ventana de reporte.
type PeriodKind string

// Ventanas soportadas.
const (
	PeriodDaily      PeriodKind = "daily"
	PeriodWeekly     PeriodKind = "weekly"
	PeriodBiweekly   PeriodKind = "biweekly"
	PeriodMonthly    PeriodKind = "monthly"
	PeriodQuarterly  PeriodKind = "quarterly"
	PeriodSemiannual PeriodKind = "semiannual"
	PeriodAnnual     PeriodKind = "annual"
)

// ParsePeriodKind valida el string recibido por query param.
func ParsePeriodKind(s string) (PeriodKind, error) {
	switch PeriodKind(s) {
	case PeriodDaily, PeriodWeekly, PeriodBiweekly, PeriodMonthly,
		PeriodQuarterly, PeriodSemiannual, PeriodAnnual:
		return PeriodKind(s), nil
	}
	return "", domain.ErrInvalidInput
}

// Window calcula el rango cerrado [start, end] de la ventana que contiene a
// ref, en la zona horaria de ref. end siempre es las 23:59:59.999 del último
// día del período.
//
//   - daily: el día calendario de ref.
//   - weekly: lunes a domingo de la semana de ref.
//   - biweekly: 1–15 si el día de ref es <= 15, si no 16–fin de mes.
//   - monthly: mes calendario completo.
//   - quarterly: bloque Ene–Mar / Abr–Jun / Jul–Sep / Oct–Dic.
//   - semiannual: Ene–Jun o Jul–Dic.
//   - annual: 1 de enero a 31 de diciembre.
func Window(ref time.Time, kind PeriodKind) (start, end time.Time, err error) {
	loc := ref.Location()
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)

	switch kind {
	case PeriodDaily:
		start = day
		end = endOfDay(day)
	case PeriodWeekly:
		// Semana con inicio en lunes.
		wd := int(day.Weekday())
		if wd == 0 {
			wd = 7
		}
		start = day.AddDate(0, 0, 1-wd)
		end = endOfDay(start.AddDate(0, 0, 6))
	case PeriodBiweekly:
		if day.Day() <= 15 {
			start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, loc)
			end = endOfDay(time.Date(day.Year(), day.Month(), 15, 0, 0, 0, 0, loc))
		} else {
			start = time.Date(day.Year(), day.Month(), 16, 0, 0, 0, 0, loc)
			end = endOfDay(lastOfMonth(day))
		}
	case PeriodMonthly:
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, loc)
		end = endOfDay(lastOfMonth(day))
	case PeriodQuarterly:
		q := (int(day.Month()) - 1) / 3
		start = time.Date(day.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, loc)
		end = endOfDay(time.Date(day.Year(), start.Month()+3, 0, 0, 0, 0, 0, loc))
	case PeriodSemiannual:
		sem := time.January
		if day.Month() >= time.July {
			sem = time.July
		}
		start = time.Date(day.Year(), sem, 1, 0, 0, 0, 0, loc)
		end = endOfDay(time.Date(day.Year(), sem+6, 0, 0, 0, 0, 0, loc))
	case PeriodAnnual:
		start = time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, loc)
		end = endOfDay(time.Date(day.Year(), time.December, 31, 0, 0, 0, 0, loc))
	default:
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return start, end, nil
}

// endOfDay devuelve las 23:59:59.999 del día de t.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59,
		int(999*time.Millisecond), t.Location())
}

// lastOfMonth devuelve el último día del mes de t (a medianoche).
// time.Date normaliza el día 0 del mes siguiente al último día del actual.
func lastOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}
