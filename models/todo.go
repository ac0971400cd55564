package models

import (
	"time"

	"gorm.io/gorm"
)

// Todo is an appointment record linking an expert, a secretary, a customer,
// a charge and a status. Every reference is a real foreign key with NO ACTION
// delete behavior: a referenced row must be soft-deleted, hard deletion is
// rejected by the database while a todo still points at it. Overlapping
// appointments for the same expert are not checked.
type Todo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	CreateDate  time.Time `json:"create_date" gorm:"column:create_date;type:date"`
	ExpertID    uint      `json:"uzman_id" gorm:"column:uzman_id"`
	SecretaryID uint      `json:"sekreter_id" gorm:"column:sekreter_id"`
	CustomerID  uint      `json:"musteri_id" gorm:"column:musteri_id"`
	ChargeID    *uint     `json:"charge_id"`
	StatusID    *uint     `json:"status_id"`
	IsDeleted   bool      `json:"is_delete" gorm:"column:is_delete;default:false"`
	Description string    `json:"description"`

	Expert    User     `json:"expert,omitempty" gorm:"foreignKey:ExpertID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION"`
	Secretary User     `json:"secretary,omitempty" gorm:"foreignKey:SecretaryID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION"`
	Customer  Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION"`
	Charge    Charge   `json:"charge,omitempty" gorm:"foreignKey:ChargeID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION"`
	Status    Status   `json:"status,omitempty" gorm:"foreignKey:StatusID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION"`
}

func (Todo) TableName() string {
	return "todos"
}

func (t *Todo) BeforeCreate(tx *gorm.DB) error {
	if t.CreateDate.IsZero() {
		t.CreateDate = time.Now().Truncate(24 * time.Hour)
	}
	return nil
}
