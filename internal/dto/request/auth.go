package request

type RegisterRequest struct {
	StudentID string `json:"studentId" validate:"required,min=3,max=20"`
	FirstName string `json:"firstName" validate:"required,min=1,max=50"`
	LastName  string `json:"lastName" validate:"required,min=1,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=10,max=15"`
	Password  string `json:"password" validate:"required,min=6"`
	Course    string `json:"course" validate:"required"`
	Year      int    `json:"year" validate:"required,gte=1,lte=4"`
	Gender    string `json:"gender" validate:"required,oneof=Male Female Other"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
