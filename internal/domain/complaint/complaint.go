// Package complaint holds the facility complaint entity. The status set is a
// closed enumeration; any status may follow any other.
package complaint

import (
	"fmt"
	"time"

	vo "campusdesk/internal/domain/complaint/valueobjects"
)

const maxTitleLength = 100

type Complaint struct {
	id          uint
	reporterID  uint
	category    vo.Category
	title       string
	description string
	location    string
	building    string
	floor       string
	status      vo.Status
	priority    vo.Priority
	assigneeID  *uint
	adminNotes  string
	resolvedAt  *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewComplaint(
	reporterID uint,
	category vo.Category,
	title string,
	description string,
	location string,
	building string,
	floor string,
	priority vo.Priority,
) (*Complaint, error) {
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid complaint type")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title cannot exceed %d characters", maxTitleLength)
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if location == "" {
		return nil, fmt.Errorf("location is required")
	}
	if priority == "" {
		priority = vo.DefaultPriority
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := time.Now()
	return &Complaint{
		reporterID:  reporterID,
		category:    category,
		title:       title,
		description: description,
		location:    location,
		building:    building,
		floor:       floor,
		status:      vo.StatusPending,
		priority:    priority,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructComplaint(
	id uint,
	reporterID uint,
	category vo.Category,
	title string,
	description string,
	location string,
	building string,
	floor string,
	status vo.Status,
	priority vo.Priority,
	assigneeID *uint,
	adminNotes string,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Complaint, error) {
	if id == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid complaint type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Complaint{
		id:          id,
		reporterID:  reporterID,
		category:    category,
		title:       title,
		description: description,
		location:    location,
		building:    building,
		floor:       floor,
		status:      status,
		priority:    priority,
		assigneeID:  assigneeID,
		adminNotes:  adminNotes,
		resolvedAt:  resolvedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Complaint) ID() uint              { return c.id }
func (c *Complaint) ReporterID() uint      { return c.reporterID }
func (c *Complaint) Category() vo.Category { return c.category }
func (c *Complaint) Title() string         { return c.title }
func (c *Complaint) Description() string   { return c.description }
func (c *Complaint) Location() string      { return c.location }
func (c *Complaint) Building() string      { return c.building }
func (c *Complaint) Floor() string         { return c.floor }
func (c *Complaint) Status() vo.Status     { return c.status }
func (c *Complaint) Priority() vo.Priority { return c.priority }
func (c *Complaint) AssigneeID() *uint     { return c.assigneeID }
func (c *Complaint) AdminNotes() string    { return c.adminNotes }
func (c *Complaint) ResolvedAt() *time.Time { return c.resolvedAt }
func (c *Complaint) CreatedAt() time.Time  { return c.createdAt }
func (c *Complaint) UpdatedAt() time.Time  { return c.updatedAt }

func (c *Complaint) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("complaint ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("complaint ID cannot be zero")
	}
	c.id = id
	return nil
}

// ChangeStatus sets the status and stamps the resolution time when entering
// resolved or closed. Any status may follow any other.
func (c *Complaint) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("valid status is required (pending, in_progress, resolved, closed)")
	}

	c.status = newStatus
	c.updatedAt = time.Now()

	if newStatus.IsTerminal() {
		now := time.Now()
		c.resolvedAt = &now
	}

	return nil
}

func (c *Complaint) Assign(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	c.assigneeID = &assigneeID
	c.updatedAt = time.Now()
	return nil
}

func (c *Complaint) SetAdminNotes(notes string) {
	c.adminNotes = notes
	c.updatedAt = time.Now()
}
