package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// PeriodsPerDay is the number of timetable slots in a teaching day.
const PeriodsPerDay = 6

// Timetable maps a weekday to its ordered period slots. An empty slot is "".
// On the wire weekdays are keyed by their English names ("Monday"), which are
// fixed by time.Weekday.String and never depend on the host locale.
type Timetable map[time.Weekday][]string

var weekdayByName = func() map[string]time.Weekday {
	m := make(map[string]time.Weekday, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		m[strings.ToLower(wd.String())] = wd
	}
	return m
}()

func ParseWeekday(name string) (time.Weekday, error) {
	wd, ok := weekdayByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return time.Sunday, errors.New("unknown weekday: " + name)
	}
	return wd, nil
}

// Day returns the slots scheduled for wd, or an empty schedule.
func (tt Timetable) Day(wd time.Weekday) []string {
	slots, ok := tt[wd]
	if !ok {
		return []string{}
	}
	return slots
}

func (tt Timetable) MarshalJSON() ([]byte, error) {
	named := make(map[string][]string, len(tt))
	for wd, slots := range tt {
		named[wd.String()] = slots
	}
	return sonic.ConfigStd.Marshal(named)
}

func (tt *Timetable) UnmarshalJSON(data []byte) error {
	var named map[string][]string
	if err := sonic.Unmarshal(data, &named); err != nil {
		return err
	}
	if named == nil {
		*tt = nil
		return nil
	}
	result := make(Timetable, len(named))
	for name, slots := range named {
		wd, err := ParseWeekday(name)
		if err != nil {
			return err
		}
		result[wd] = slots
	}
	*tt = result
	return nil
}
