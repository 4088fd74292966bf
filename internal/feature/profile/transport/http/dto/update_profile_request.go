// Package dto defines data transfer objects for the profile feature's HTTP transport layer.
package dto

// UpdateProfileReq represents the request body for PUT /api/users/profile.
// All four fields are overwritten unconditionally, so all are required.
type UpdateProfileReq struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
	Age   int    `json:"age" binding:"required,gte=1"`
}
