package personnel

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeTeamLeader Type = "Team Leader"
	TypeWriterCrew Type = "Writer Crew"
)

func ParseType(v string) (Type, bool) {
	switch t := Type(v); t {
	case TypeTeamLeader, TypeWriterCrew:
		return t, true
	default:
		return "", false
	}
}

type Status string

const (
	StatusAvailable     Status = "Available"
	StatusAnnualLeave   Status = "Annual Leave"
	StatusSickLeave     Status = "Sick Leave"
	StatusPersonalLeave Status = "Personal Leave"
)

func ParseStatus(v string) (Status, bool) {
	switch s := Status(v); s {
	case StatusAvailable, StatusAnnualLeave, StatusSickLeave, StatusPersonalLeave:
		return s, true
	default:
		return "", false
	}
}

type Personnel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID string    `gorm:"size:50;not null;uniqueIndex"`
	Name       string    `gorm:"size:255;not null"`
	Type       Type      `gorm:"size:30;not null"`
	Status     Status    `gorm:"size:30;not null;default:'Available'"`
	EmiratesID string    `gorm:"size:50;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Personnel) TableName() string {
	return "personnel"
}
