package storage

import (
	"context"
	"sync"

	"ewintr.nl/hobbyplan/model"
	"github.com/google/uuid"
)

// Memory keeps plans in process. Stored plans are copied so callers cannot
// change them afterwards.
type Memory struct {
	mu    sync.RWMutex
	plans map[uuid.UUID]model.PlanRecord
}

func NewMemory() *Memory {
	return &Memory{
		plans: make(map[uuid.UUID]model.PlanRecord),
	}
}

func (m *Memory) Save(_ context.Context, plan *model.PlanRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.plans[plan.ID] = clonePlan(*plan)
	return nil
}

func (m *Memory) FindByID(_ context.Context, id uuid.UUID) (*model.PlanRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	plan, ok := m.plans[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := clonePlan(plan)
	return &c, nil
}

func clonePlan(p model.PlanRecord) model.PlanRecord {
	if p.Days == nil {
		return p
	}
	days := make([]model.DayPlan, len(p.Days))
	for i, d := range p.Days {
		d.HowTo = cloneStrings(d.HowTo)
		d.Checklist = cloneStrings(d.Checklist)
		d.Tips = cloneStrings(d.Tips)
		d.MistakesToAvoid = cloneStrings(d.MistakesToAvoid)
		if d.AffiliateProducts != nil {
			d.AffiliateProducts = append(make([]model.AffiliateProduct, 0, len(d.AffiliateProducts)), d.AffiliateProducts...)
		}
		days[i] = d
	}
	p.Days = days
	return p
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
