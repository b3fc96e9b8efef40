package models

import "time"

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityIntense   ActivityLevel = "intense"
	ActivityExtreme   ActivityLevel = "extreme"
)

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityIntense, ActivityExtreme:
		return true
	}
	return false
}

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

func (g Goal) Valid() bool {
	return g == GoalLose || g == GoalMaintain || g == GoalGain
}

// ClientProfile carries the physical attributes every calculation
// derives from. One row per client user.
type ClientProfile struct {
	UserID          uint          `gorm:"primaryKey" json:"user_id"`
	User            User          `json:"user"`
	HeightCm        float64       `gorm:"not null" json:"height_cm"`
	WeightCurrentKg float64       `gorm:"not null" json:"weight_current_kg"`
	WeightGoalKg    float64       `gorm:"not null" json:"weight_goal_kg"`
	ActivityLevel   ActivityLevel `gorm:"type:varchar(20);not null" json:"activity_level"`
	Goal            Goal          `gorm:"type:varchar(20);not null" json:"goal"`
}

// Age uses the civil-calendar rule: birth year subtracted from the
// current year, minus one if the birthday has not happened yet.
func (p *ClientProfile) Age(today time.Time) int {
	b := p.User.BirthDate
	age := today.Year() - b.Year()
	if today.Month() < b.Month() || (today.Month() == b.Month() && today.Day() < b.Day()) {
		age--
	}
	return age
}

// WeightChangeNeeded is the kg delta to the goal weight (signed).
func (p *ClientProfile) WeightChangeNeeded() float64 {
	return p.WeightGoalKg - p.WeightCurrentKg
}
