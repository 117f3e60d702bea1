package dto

type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

type ValidateInput struct {
	Token string `json:"token"`
}
