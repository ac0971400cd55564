package models

type Customer struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	NationalID int    `json:"tc" gorm:"column:tc"`
	FirstName  string `json:"ad" gorm:"column:ad"`
	LastName   string `json:"soyad" gorm:"column:soyad"`
	Email      string `json:"email" gorm:"unique"`
	Phone      string `json:"telno" gorm:"column:telno"`
	Info       string `json:"info"`
	Address    string `json:"address1" gorm:"column:address1"`
	City       string `json:"city"`
	URL        string `json:"url"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`
	IsDeleted  bool   `json:"is_delete" gorm:"column:is_delete;default:false"`

	Todos     []Todo     `json:"todos,omitempty" gorm:"foreignKey:CustomerID"`
	Documents []Document `json:"documents,omitempty" gorm:"foreignKey:CustomerID"`
}

func (Customer) TableName() string {
	return "customers"
}
