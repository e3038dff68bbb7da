package user

type RegisterDTO struct {
	Username string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileDTO struct {
	Username string `json:"userName"`
	Email    string `json:"email"`
}

type UpdatePasswordDTO struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
