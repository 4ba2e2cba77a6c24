package types

// Profile 用户设置页数据 email/username 只读
type Profile struct {
	Email      string `json:"email"`
	Username   string `json:"username"`
	ProfileURL string `json:"profile_url"`
}

type UpdateProfileRequest struct {
	ProfileURL *string `json:"profile_url" binding:"omitempty,url,max=1250"`
}
