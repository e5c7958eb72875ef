package vehicle

type CreateVehicleRequest struct {
	Name   string `json:"name" binding:"required"`
	Plate  string `json:"plate" binding:"required"`
	Status string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type VehicleResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Plate     string `json:"plate"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
