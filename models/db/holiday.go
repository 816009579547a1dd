package dbmodels

import (
	"time"

	dictapimodels "conges-backend/models/api/dict"
)

type Holiday struct {
	BaseModel
	Jour        time.Time `gorm:"index"`
	Description string    `gorm:"type:varchar(255)"`
}

func (r Holiday) ToModel() dictapimodels.HolidayView {
	return dictapimodels.HolidayView{
		ID: r.ID,
		HolidayData: dictapimodels.HolidayData{
			Jour:        r.Jour.Format("2006-01-02"),
			Description: r.Description,
		},
	}
}
