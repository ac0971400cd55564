package models

// Status is a free-form lookup table for appointment state. There is no
// enforced transition graph: any status may follow any other. Observed codes:
// 0 pending, 1 confirmed, 2 done, 3 other, 9 cancelled.
type Status struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"status_name" gorm:"column:status_name"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	IsDeleted bool   `json:"is_delete" gorm:"column:is_delete;default:false"`

	Todos []Todo `json:"todos,omitempty" gorm:"foreignKey:StatusID"`
}

func (Status) TableName() string {
	return "status"
}
