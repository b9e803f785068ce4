package models

type ComplaintModel struct {
	ID          uint   `gorm:"primaryKey"`
	ReporterID  uint   `gorm:"not null;index"`
	Category    string `gorm:"size:30;not null;index"`
	Title       string `gorm:"size:100;not null"`
	Description string `gorm:"type:text;not null"`
	Location    string `gorm:"size:200;not null"`
	Building    string `gorm:"size:100"`
	Floor       string `gorm:"size:50"`
	Status      string `gorm:"size:20;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	AdminNotes  string `gorm:"type:text"`
	ResolvedAt  *int64
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (ComplaintModel) TableName() string {
	return "complaints"
}
