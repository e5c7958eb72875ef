package settings

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"maps"
	"time"

	"go-opscentral/internal/capacity"

	"github.com/lib/pq"
)

const SingletonID = 1

// DailyLimits maps YYYY-MM-DD to the max number of jobs for that date.
type DailyLimits map[string]int

func (d DailyLimits) Value() (driver.Value, error) {
	if d == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d)
}

func (d *DailyLimits) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*d = DailyLimits{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("daily_job_limits: unsupported type %T", src)
	}

	out := DailyLimits{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*d = out
	return nil
}

type SystemSettings struct {
	ID             int            `gorm:"primaryKey;autoIncrement:false"`
	DailyJobLimits DailyLimits    `gorm:"type:jsonb;not null;default:'{}'"`
	Holidays       pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	UpdatedAt      time.Time
}

func (SystemSettings) TableName() string {
	return "system_settings"
}

func defaultSettings() *SystemSettings {
	return &SystemSettings{
		ID:             SingletonID,
		DailyJobLimits: DailyLimits{},
		Holidays:       pq.StringArray{},
	}
}

// Capacity converts the row into the policy input.
func (s SystemSettings) Capacity() capacity.Settings {
	limits := make(map[string]int, len(s.DailyJobLimits))
	maps.Copy(limits, s.DailyJobLimits)
	return capacity.Settings{
		DailyJobLimits: limits,
		Holidays:       append([]string{}, s.Holidays...),
	}
}
