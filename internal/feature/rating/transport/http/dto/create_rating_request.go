// Package dto defines data transfer objects for the rating feature's HTTP transport layer.
package dto

// CreateRatingReq represents the request body for POST /api/ratings/.
type CreateRatingReq struct {
	RideID   string `json:"rideId" binding:"required,uuid"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback string `json:"feedback"`
}
