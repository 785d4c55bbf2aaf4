package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CalendarDay is a planned date stored in a SQL date column. It carries no
// time of day and no offset; the value is always a YYYY-MM-DD token.
type CalendarDay string

const calendarDayLayout = "2006-01-02"

// Value implements the driver.Valuer interface
func (d CalendarDay) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

// Scan implements the sql.Scanner interface. Drivers hand back date columns
// either as time.Time at midnight or as text, depending on the dialect.
func (d *CalendarDay) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = CalendarDay(v.Format(calendarDayLayout))
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("cannot scan %T into CalendarDay", value)
	}
	return nil
}

func (d *CalendarDay) scanText(s string) error {
	if len(s) < len(calendarDayLayout) {
		return fmt.Errorf("cannot scan %q into CalendarDay", s)
	}
	t, err := time.Parse(calendarDayLayout, s[:len(calendarDayLayout)])
	if err != nil {
		return fmt.Errorf("cannot scan %q into CalendarDay: %w", s, err)
	}
	*d = CalendarDay(t.Format(calendarDayLayout))
	return nil
}

func (d CalendarDay) String() string {
	return string(d)
}

// MealPlan schedules one meal on one calendar day for one user.
type MealPlan struct {
	ID          uint        `gorm:"primarykey" json:"id"`
	UserID      uuid.UUID   `gorm:"type:varchar(36);not null;index" json:"user_id"`
	MealID      uint        `gorm:"not null;index" json:"meal_id"`
	PlannedDate CalendarDay `gorm:"type:date;not null;index" json:"planned_date"`
	Meal        *Meal       `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"meal,omitempty"`
}
