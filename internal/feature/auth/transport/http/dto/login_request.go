// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// LoginReq represents the body of POST /login.
// The form and JSON encodings are both accepted.
type LoginReq struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}
