package models

// User is a staff account. Expert/secretary/owner are capability flags used
// for row-level filtering; route-level access is decided by the Role tag.
// Email and username are unique among non-purged rows.
type User struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	NationalID  int    `json:"tc" gorm:"column:tc"`
	FirstName   string `json:"ad" gorm:"column:ad"`
	LastName    string `json:"soyad" gorm:"column:soyad"`
	Email       string `json:"email" gorm:"unique"`
	Phone       string `json:"telno" gorm:"column:telno"`
	Username    string `json:"username" gorm:"unique"`
	Password    string `json:"-" gorm:"column:hashed_password"`
	Role        string `json:"role" gorm:"default:user"`
	Owner       bool   `json:"owner" gorm:"default:false"`
	IsExpert    bool   `json:"uzman" gorm:"column:uzman;default:false"`
	IsSecretary bool   `json:"sekreter" gorm:"column:sekreter;default:false"`
	IsActive    bool   `json:"is_active" gorm:"default:false"`
	IsDeleted   bool   `json:"is_delete" gorm:"column:is_delete;default:false"`

	ExpertTodos    []Todo `json:"expert_todos,omitempty" gorm:"foreignKey:ExpertID"`
	SecretaryTodos []Todo `json:"secretary_todos,omitempty" gorm:"foreignKey:SecretaryID"`
}

func (User) TableName() string {
	return "users"
}
