package settings

type SetLimitRequest struct {
	Limit *int `json:"limit" binding:"required,min=0"`
}

type SettingsResponse struct {
	DailyJobLimits map[string]int `json:"daily_job_limits"`
	Holidays       []string       `json:"holidays"`
}
