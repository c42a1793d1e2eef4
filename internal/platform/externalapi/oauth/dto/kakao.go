package dto

// KakaoUser is the body of GET /v2/user/me.
type KakaoUser struct {
	ID           int64           `json:"id"`
	Properties   KakaoProperties `json:"properties"`
	KakaoAccount KakaoAccount    `json:"kakao_account"`
}

type KakaoProperties struct {
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profile_image"`
}

type KakaoAccount struct {
	Profile         KakaoProfile `json:"profile"`
	Email           string       `json:"email"`
	IsEmailValid    bool         `json:"is_email_valid"`
	IsEmailVerified bool         `json:"is_email_verified"`
}

type KakaoProfile struct {
	Nickname        string `json:"nickname"`
	ProfileImageURL string `json:"profile_image_url"`
}
