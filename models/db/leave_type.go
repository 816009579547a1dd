package dbmodels

import dictapimodels "conges-backend/models/api/dict"

type LeaveType struct {
	BaseModel
	Nom            string `gorm:"type:varchar(150);uniqueIndex"`
	JoursAutorises int
}

func (r LeaveType) ToModel() dictapimodels.LeaveTypeView {
	return dictapimodels.LeaveTypeView{
		ID: r.ID,
		LeaveTypeData: dictapimodels.LeaveTypeData{
			Nom:            r.Nom,
			JoursAutorises: r.JoursAutorises,
		},
	}
}
