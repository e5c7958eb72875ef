package job

type CreateJobRequest struct {
	ID                  string   `json:"id" binding:"required"`
	ShipperName         string   `json:"shipper_name" binding:"required"`
	Location            string   `json:"location"`
	Description         string   `json:"description"`
	ShipmentDetails     string   `json:"shipment_details"`
	AgentName           string   `json:"agent_name"`
	Priority            string   `json:"priority"`
	LoadingType         string   `json:"loading_type"`
	MainCategory        string   `json:"main_category"`
	SubCategory         string   `json:"sub_category"`
	VolumeCBM           float64  `json:"volume_cbm" binding:"gte=0"`
	JobDate             string   `json:"job_date"`
	JobTime             string   `json:"job_time"`
	AssignedTo          string   `json:"assigned_to"`
	IsWarehouseActivity bool     `json:"is_warehouse_activity"`
	IsImportClearance   bool     `json:"is_import_clearance"`
	TeamLeader          string   `json:"team_leader"`
	Vehicle             string   `json:"vehicle"`
	WriterCrew          []string `json:"writer_crew"`
	BolNumber           string   `json:"bol_number"`
	ContainerNumber     string   `json:"container_number"`
	CustomsStatus       string   `json:"customs_status"`
}

// AllocationRequest only touches the fields that are present.
type AllocationRequest struct {
	TeamLeader *string   `json:"team_leader"`
	Vehicle    *string   `json:"vehicle"`
	WriterCrew *[]string `json:"writer_crew"`
}

type CustomsStatusRequest struct {
	CustomsStatus string `json:"customs_status" binding:"required"`
}

type ApprovalRequest struct {
	Approved   *bool              `json:"approved" binding:"required"`
	Allocation *AllocationRequest `json:"allocation"`
}

type JobFilter struct {
	Status            string
	Date              string
	ImportClearance   *bool
	WarehouseActivity *bool
	Query             string
}

type JobResponse struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	ShipperName         string   `json:"shipper_name"`
	Location            string   `json:"location,omitempty"`
	Description         string   `json:"description"`
	ShipmentDetails     string   `json:"shipment_details"`
	AgentName           string   `json:"agent_name,omitempty"`
	Priority            string   `json:"priority"`
	LoadingType         string   `json:"loading_type"`
	MainCategory        string   `json:"main_category,omitempty"`
	SubCategory         string   `json:"sub_category,omitempty"`
	VolumeCBM           float64  `json:"volume_cbm,omitempty"`
	JobDate             string   `json:"job_date"`
	JobTime             string   `json:"job_time,omitempty"`
	Status              string   `json:"status"`
	CreatedAt           int64    `json:"created_at"`
	RequesterID         string   `json:"requester_id"`
	AssignedTo          string   `json:"assigned_to"`
	IsLocked            bool     `json:"is_locked"`
	IsWarehouseActivity bool     `json:"is_warehouse_activity"`
	IsImportClearance   bool     `json:"is_import_clearance"`
	TeamLeader          string   `json:"team_leader,omitempty"`
	Vehicle             string   `json:"vehicle,omitempty"`
	WriterCrew          []string `json:"writer_crew"`
	BolNumber           string   `json:"bol_number,omitempty"`
	ContainerNumber     string   `json:"container_number,omitempty"`
	CustomsStatus       string   `json:"customs_status,omitempty"`
}

type DeleteResult struct {
	Deleted bool         `json:"deleted"`
	Job     *JobResponse `json:"job,omitempty"`
}

type ApprovalOutcome struct {
	Outcome Outcome      `json:"outcome"`
	Job     *JobResponse `json:"job,omitempty"`
}

type CapacityResponse struct {
	Date               string `json:"date"`
	Holiday            bool   `json:"holiday"`
	Limit              int    `json:"limit"`
	Used               int    `json:"used"`
	Remaining          int    `json:"remaining"`
	ClearanceLimit     int    `json:"clearance_limit"`
	ClearanceUsed      int    `json:"clearance_used"`
	ClearanceRemaining int    `json:"clearance_remaining"`
}
