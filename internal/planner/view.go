package planner

import (
	"slices"
	"sync"

	"github.com/limbo/planner/pkg/entity"
)

// DayView keeps the latest activities snapshot together with the selected
// date. Each snapshot delivery replaces the previous one wholesale; the
// timeline is always recomputed from the latest pair.
type DayView struct {
	mu         sync.RWMutex
	activities []entity.Activity
	date       string
}

func NewDayView(date string) *DayView {
	return &DayView{date: date}
}

func (v *DayView) SetSnapshot(activities []entity.Activity) {
	snapshot := slices.Clone(activities)
	v.mu.Lock()
	v.activities = snapshot
	v.mu.Unlock()
}

func (v *DayView) Select(date string) error {
	if _, err := ParseDate(date); err != nil {
		return err
	}
	v.mu.Lock()
	v.date = date
	v.mu.Unlock()
	return nil
}

func (v *DayView) Date() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.date
}

func (v *DayView) Timeline() entity.DayTimeline {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return entity.DayTimeline{
		Date:    v.date,
		Entries: BuildTimeline(v.activities, v.date),
	}
}
