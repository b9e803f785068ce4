package faculty

import (
	"time"

	"campusdesk/internal/application/directory/usecases"
	"campusdesk/internal/domain/directory"
)

type CreateProfileRequest struct {
	Name        string `json:"name" binding:"required" validate:"required,min=1,max=100"`
	Department  string `json:"department" binding:"required" validate:"required,min=1,max=100"`
	Email       string `json:"email" binding:"required" validate:"required,email"`
	Designation string `json:"designation" validate:"omitempty,max=100"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	Office      string `json:"office" validate:"omitempty,max=100"`
	Bio         string `json:"bio" validate:"omitempty,max=2000"`
}

func (r *CreateProfileRequest) ToCommand() usecases.CreateProfileCommand {
	return usecases.CreateProfileCommand{
		Name:        r.Name,
		Department:  r.Department,
		Email:       r.Email,
		Designation: r.Designation,
		Phone:       r.Phone,
		Office:      r.Office,
		Bio:         r.Bio,
	}
}

type ProfileResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Department  string    `json:"department"`
	Email       string    `json:"email"`
	Designation string    `json:"designation,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Office      string    `json:"office,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toProfileResponse(p *directory.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Department:  p.Department(),
		Email:       p.Email(),
		Designation: p.Designation(),
		Phone:       p.Phone(),
		Office:      p.Office(),
		Bio:         p.Bio(),
		CreatedAt:   p.CreatedAt(),
	}
}

func toProfileResponses(profiles []*directory.Profile) []ProfileResponse {
	responses := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, toProfileResponse(p))
	}
	return responses
}
