package dbmodels

import (
	"fmt"
	"time"

	"conges-backend/models"
)

type User struct {
	BaseModel
	Email              string          `gorm:"type:varchar(255);uniqueIndex"`
	Password           string          `gorm:"type:varchar(128)" json:"-"`
	Nom                string          `gorm:"type:varchar(150)"`
	Prenom             string          `gorm:"type:varchar(150)"`
	Role               models.UserRole `gorm:"type:varchar(50)"`
	Matricule          *string         `gorm:"type:varchar(20);uniqueIndex"`
	Employee           *Employee       `gorm:"foreignKey:Matricule;references:Matricule"`
	TempPassword       bool
	MustChangePassword bool
	IsActive           bool
	LastLogin          time.Time
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.Prenom, r.Nom)
}
