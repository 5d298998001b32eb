package request

type ChatRequest struct {
	Question string `json:"question" validate:"required,min=1,max=2000"`
}
