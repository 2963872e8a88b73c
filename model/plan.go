package model

import (
	"time"
)

// PlanTask is a single checklist item inside a study plan.
type PlanTask struct {
	ID        string `bson:"id" json:"id"`
	Title     string `bson:"title" json:"title"`
	Completed bool   `bson:"completed" json:"completed"`
}

type StudyPlan struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	UserID    string     `bson:"user_id" json:"user_id"`
	Title     string     `bson:"title" json:"title" binding:"required"`
	Subject   string     `bson:"subject,omitempty" json:"subject,omitempty"`
	Tasks     []PlanTask `bson:"tasks" json:"tasks"`
	StartDate time.Time  `bson:"start_date" json:"start_date"`
	EndDate   time.Time  `bson:"end_date" json:"end_date"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

// Progress is the percentage of completed tasks, rounded to the nearest
// whole number. A plan without tasks reports zero.
func (p *StudyPlan) Progress() int {
	if len(p.Tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range p.Tasks {
		if t.Completed {
			completed++
		}
	}
	return int(float64(completed)/float64(len(p.Tasks))*100 + 0.5)
}
