package models

// Document is an uploaded customer file. Path holds the storage location
// (the upload backend's secure URL), Size the byte count reported at upload.
type Document struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	File       string `json:"file"`
	Content    string `json:"content"`
	Path       string `json:"path"`
	Size       int    `json:"size"`
	CustomerID uint   `json:"customer_id"`

	Customer Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION"`
}

func (Document) TableName() string {
	return "documents"
}
