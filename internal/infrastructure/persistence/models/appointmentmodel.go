package models

import "time"

type AppointmentModel struct {
	ID           uint      `gorm:"primaryKey"`
	StudentID    uint      `gorm:"not null;index"`
	FacultyID    uint      `gorm:"not null;index"`
	Date         time.Time `gorm:"type:date;not null"`
	TimeOfDay    string    `gorm:"column:time_of_day;size:5;not null"`
	Duration     int       `gorm:"not null"`
	Reason       string    `gorm:"type:text;not null"`
	Status       string    `gorm:"size:20;not null;index"`
	MeetingLink  string    `gorm:"size:500"`
	FacultyNotes string    `gorm:"type:text"`
	CreatedAt    int64     `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64     `gorm:"autoUpdateTime:milli;not null"`

	// The active_slot generated column and its unique index live only in
	// the migration; MySQL maintains them, so the model does not map them.
}

func (AppointmentModel) TableName() string {
	return "appointments"
}
