// Package dto defines data transfer objects for the driver feature's HTTP transport layer.
package dto

// RegisterDriverReq represents the request body for POST /api/drivers/register.
// Availability is optional and defaults to 1 server-side.
type RegisterDriverReq struct {
	VehicleType        string  `json:"vehicleType" binding:"required"`
	Origin             string  `json:"origin" binding:"required"`
	Destination        string  `json:"destination" binding:"required"`
	Price              float64 `json:"price" binding:"required,gt=0"`
	RegistrationNumber string  `json:"registrationNumber" binding:"required"`
	LicenseNumber      string  `json:"licenseNumber" binding:"required"`
	LicenseHolderName  string  `json:"licenseHolderName" binding:"required"`
	Availability       int     `json:"availability" binding:"omitempty,gte=1"`
	HelmetRequired     bool    `json:"helmetRequired"`
}

// ListDriversQuery represents the query parameters for GET /api/drivers/.
// Filter predicates are applied server-side, with pagination.
type ListDriversQuery struct {
	VehicleType string `form:"vehicleType"`
	MinSeats    int    `form:"minSeats" binding:"omitempty,gte=0"`
	Route       string `form:"route"`
	Limit       int    `form:"limit" binding:"omitempty,gte=1"`
	Offset      int    `form:"offset" binding:"omitempty,gte=0"`
}
