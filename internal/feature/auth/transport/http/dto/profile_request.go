package dto

// EditProfileReq represents the body of POST /users/edit.
// The optional avatar arrives as the multipart file "avatar".
type EditProfileReq struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Username string `form:"username" json:"username"`
	Location string `form:"location" json:"location"`
}

// ChangePasswordReq represents the body of POST /users/change-password.
type ChangePasswordReq struct {
	Old                     string `form:"old" json:"old"`
	NewPassword             string `form:"newPassword" json:"newPassword"`
	NewPasswordConfirmation string `form:"newPasswordConfirmation" json:"newPasswordConfirmation"`
}
