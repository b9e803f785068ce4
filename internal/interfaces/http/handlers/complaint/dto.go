package complaint

import (
	"time"

	"campusdesk/internal/application/complaint/usecases"
	"campusdesk/internal/domain/user"
)

type CreateComplaintRequest struct {
	Category    string `json:"category" binding:"required"`
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"required,max=5000"`
	Location    string `json:"location" binding:"required,max=200"`
	Building    string `json:"building" binding:"max=100"`
	Floor       string `json:"floor" binding:"max=50"`
	Priority    string `json:"priority"`
}

func (r *CreateComplaintRequest) ToCommand(reporterID uint) usecases.CreateComplaintCommand {
	return usecases.CreateComplaintCommand{
		ReporterID:  reporterID,
		Category:    r.Category,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Building:    r.Building,
		Floor:       r.Floor,
		Priority:    r.Priority,
	}
}

type UpdateStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"admin_notes"`
	AssigneeID uint   `json:"assignee_id"`
}

type PersonResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ComplaintResponse struct {
	ID          uint            `json:"id"`
	Reporter    *PersonResponse `json:"reporter,omitempty"`
	Assignee    *PersonResponse `json:"assignee,omitempty"`
	Category    string          `json:"category"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Building    string          `json:"building,omitempty"`
	Floor       string          `json:"floor,omitempty"`
	Status      string          `json:"status"`
	Priority    string          `json:"priority"`
	AdminNotes  string          `json:"admin_notes,omitempty"`
	ResolvedAt  *time.Time      `json:"resolved_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toPersonResponse(u *user.User) *PersonResponse {
	if u == nil {
		return nil
	}
	return &PersonResponse{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email().String(),
	}
}

func toComplaintResponse(details *usecases.ComplaintDetails) ComplaintResponse {
	c := details.Complaint
	return ComplaintResponse{
		ID:          c.ID(),
		Reporter:    toPersonResponse(details.Reporter),
		Assignee:    toPersonResponse(details.Assignee),
		Category:    c.Category().String(),
		Title:       c.Title(),
		Description: c.Description(),
		Location:    c.Location(),
		Building:    c.Building(),
		Floor:       c.Floor(),
		Status:      c.Status().String(),
		Priority:    c.Priority().String(),
		AdminNotes:  c.AdminNotes(),
		ResolvedAt:  c.ResolvedAt(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func toComplaintResponses(details []usecases.ComplaintDetails) []ComplaintResponse {
	responses := make([]ComplaintResponse, 0, len(details))
	for i := range details {
		responses = append(responses, toComplaintResponse(&details[i]))
	}
	return responses
}
