package vehicle

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusAvailable    Status = "Available"
	StatusOutOfService Status = "Out of Service"
	StatusMaintenance  Status = "Maintenance"
)

func ParseStatus(v string) (Status, bool) {
	switch s := Status(v); s {
	case StatusAvailable, StatusOutOfService, StatusMaintenance:
		return s, true
	default:
		return "", false
	}
}

type Vehicle struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Plate     string    `gorm:"size:30;not null;uniqueIndex"`
	Status    Status    `gorm:"size:30;not null;default:'Available'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
