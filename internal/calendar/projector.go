// Package calendar derives the per-person, per-day leave view for one year.
// The projection is always rebuilt whole from the record list.
package calendar

import (
	"strings"
	"time"

	"territorial-admin-bot/internal/models"
	"territorial-admin-bot/pkg/dates"
)

// Projection maps roster display name → ISO day → status label for one
// year. Cells without leave are absent.
type Projection struct {
	Year  int
	Names []string
	Cells map[string]map[string]string
}

// Build projects the record list onto the roster for the given year.
// Records processed later in list order overwrite earlier cells.
func Build(records []models.LeaveRecord, roster []string, year int) *Projection {
	projection := &Projection{
		Year:  year,
		Names: roster,
		Cells: make(map[string]map[string]string, len(roster)),
	}

	for i := range records {
		record := &records[i]
		if !record.OnCalendar() {
			continue
		}
		name, ok := MatchRosterName(record.PersonName, roster)
		if !ok {
			// Off-roster names stay in the record table but draw nothing.
			continue
		}
		label := record.Label()
		if label == "" {
			continue
		}
		dates.EachDay(*record.StartDate, *record.EndDate, func(day time.Time) {
			if day.Year() != year {
				return
			}
			projection.set(name, day.Format(dates.ISO), label)
		})
	}

	return projection
}

func (p *Projection) set(name, day, label string) {
	row, ok := p.Cells[name]
	if !ok {
		row = make(map[string]string)
		p.Cells[name] = row
	}
	row[day] = label
}

// Label returns the cell label for a roster name and ISO day, or "".
func (p *Projection) Label(name, day string) string {
	return p.Cells[name][day]
}

// DaysFor returns the populated ISO days for a roster name, in order.
func (p *Projection) DaysFor(name string) []string {
	row := p.Cells[name]
	if len(row) == 0 {
		return nil
	}
	out := make([]string, 0, len(row))
	for _, day := range dates.YearDays(p.Year) {
		if _, ok := row[day]; ok {
			out = append(out, day)
		}
	}
	return out
}

// MatchRosterName resolves a typed person name against the roster:
// case-insensitive substring containment in either direction, first match
// in roster order wins. Short roster names may capture unrelated longer
// inputs.
func MatchRosterName(name string, roster []string) (string, bool) {
	needle := strings.ToUpper(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}
	for _, entry := range roster {
		candidate := strings.ToUpper(entry)
		if strings.Contains(candidate, needle) || strings.Contains(needle, candidate) {
			return entry, true
		}
	}
	return "", false
}
