package request

// UpdateStudentRequest carries partial updates; nil fields are left unchanged.
type UpdateStudentRequest struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,min=1,max=50"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,min=1,max=50"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Course    *string `json:"course,omitempty"`
	Year      *int    `json:"year,omitempty" validate:"omitempty,gte=1,lte=4"`
	Gender    *string `json:"gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

type StudentListRequest struct {
	PaginatedRequest
	Course  string `json:"course"`
	Year    int    `json:"year"`
	Gender  string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	HasRoom *bool  `json:"hasRoom,omitempty"`
}
