package models

type FacultyProfileModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Department  string `gorm:"size:100;not null;index"`
	Email       string `gorm:"uniqueIndex;size:255;not null"`
	Designation string `gorm:"size:100"`
	Phone       string `gorm:"size:30"`
	Office      string `gorm:"size:100"`
	Bio         string `gorm:"type:text"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (FacultyProfileModel) TableName() string {
	return "faculty_profiles"
}
