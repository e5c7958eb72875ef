package job

import (
	"github.com/lib/pq"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func ParsePriority(v string) (Priority, bool) {
	switch p := Priority(v); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, true
	default:
		return "", false
	}
}

type LoadingType string

const (
	LoadingWarehouseRemoval LoadingType = "Warehouse Removal"
	LoadingStorage          LoadingType = "Storage"
	LoadingLocalStorage     LoadingType = "Local Storage"
	LoadingDirectLoading    LoadingType = "Direct Loading"
	LoadingDelivery         LoadingType = "Delivery"
)

func ParseLoadingType(v string) (LoadingType, bool) {
	switch l := LoadingType(v); l {
	case LoadingWarehouseRemoval, LoadingStorage, LoadingLocalStorage, LoadingDirectLoading, LoadingDelivery:
		return l, true
	default:
		return "", false
	}
}

type CustomsStatus string

const (
	CustomsPendingDocumentation CustomsStatus = "PENDING_DOCUMENTATION"
	CustomsSubmitted            CustomsStatus = "SUBMITTED"
	CustomsInReview             CustomsStatus = "IN_REVIEW"
	CustomsCleared              CustomsStatus = "CLEARED"
	CustomsRejected             CustomsStatus = "REJECTED_CUSTOMS"
)

func ParseCustomsStatus(v string) (CustomsStatus, bool) {
	switch c := CustomsStatus(v); c {
	case CustomsPendingDocumentation, CustomsSubmitted, CustomsInReview, CustomsCleared, CustomsRejected:
		return c, true
	default:
		return "", false
	}
}

const (
	DefaultAssignee = "Unassigned"
	DefaultText     = "N/A"
)

// Job.ID is the caller supplied job number.
type Job struct {
	ID              string         `gorm:"type:varchar(64);primaryKey"`
	Title           string         `gorm:"type:varchar(64);not null"`
	ShipperName     string         `gorm:"type:varchar(255);not null"`
	Location        string         `gorm:"type:varchar(255)"`
	Description     string         `gorm:"type:text"`
	ShipmentDetails string         `gorm:"type:text"`
	AgentName       string         `gorm:"type:varchar(255)"`
	Priority        Priority       `gorm:"type:varchar(10);not null;default:LOW"`
	LoadingType     LoadingType    `gorm:"type:varchar(32);not null"`
	MainCategory    string         `gorm:"type:varchar(64)"`
	SubCategory     string         `gorm:"type:varchar(64)"`
	VolumeCBM       float64        `gorm:"column:volume_cbm"`
	JobDate         string         `gorm:"type:varchar(10);not null;index"`
	JobTime         string         `gorm:"type:varchar(16)"`
	Status          Status         `gorm:"type:varchar(20);not null;index"`
	CreatedAt       int64          `gorm:"autoCreateTime:milli;index"`
	RequesterID     string         `gorm:"type:varchar(64);not null"`
	AssignedTo      string         `gorm:"type:varchar(255);not null;default:Unassigned"`
	IsLocked        bool           `gorm:"not null;default:false"`
	IsWarehouse     bool           `gorm:"column:is_warehouse_activity;not null;default:false"`
	IsClearance     bool           `gorm:"column:is_import_clearance;not null;default:false;index"`
	TeamLeader      string         `gorm:"type:varchar(255)"`
	Vehicle         string         `gorm:"type:varchar(255)"`
	WriterCrew      pq.StringArray `gorm:"type:text[]"`
	BolNumber       string         `gorm:"type:varchar(64)"`
	ContainerNumber string         `gorm:"type:varchar(64)"`
	CustomsStatus   CustomsStatus  `gorm:"type:varchar(32)"`
}

func (Job) TableName() string {
	return "jobs"
}
