package models

type Attachment struct {
	BaseModel

	ProjectID    uint   `gorm:"not null;index"`
	FilePath     string `gorm:"not null"`
	OriginalName string

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
