package dto

// JoinReq represents the body of POST /join.
// Required fields are enforced by the user store so its validation message reaches the client.
type JoinReq struct {
	Name      string `form:"name" json:"name"`
	Username  string `form:"username" json:"username"`
	Email     string `form:"email" json:"email"`
	Password  string `form:"password" json:"password"`
	Password2 string `form:"password2" json:"password2"`
	Location  string `form:"location" json:"location"`
}
