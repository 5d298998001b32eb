package response

type AuthResponse struct {
	Student StudentResponse `json:"student"`
	Token   string          `json:"token"`
}
