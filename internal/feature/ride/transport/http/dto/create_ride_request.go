// Package dto defines data transfer objects for the ride feature's HTTP transport layer.
package dto

// CreateRideReq represents the request body for POST /api/rides/.
// DriverID is optional: a ride may be created before any driver claims it.
type CreateRideReq struct {
	DriverID       *string `json:"driverId" binding:"omitempty,uuid"`
	VehicleType    string  `json:"vehicleType" binding:"required"`
	SeatsAvailable int     `json:"seatsAvailable" binding:"required,gte=1"`
	Price          float64 `json:"price" binding:"required,gt=0"`
	Src            string  `json:"src" binding:"required"`
	Dest           string  `json:"dest" binding:"required"`
}

// ListRidesQuery represents the query parameters for GET /api/rides/available.
type ListRidesQuery struct {
	Limit  int `form:"limit" binding:"omitempty,gte=1"`
	Offset int `form:"offset" binding:"omitempty,gte=0"`
}
