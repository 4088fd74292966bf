// Package api はトランスポート層で共有されるレスポンスDTOを定義します。
package api

// ErrorResponse はエラー時の共通JSONボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は人間可読メッセージのみを返すレスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse は /api/auth/login の成功レスポンスです。
type LoginResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Token   string `json:"token"`
}
