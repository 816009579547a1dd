package dbmodels

import dictapimodels "conges-backend/models/api/dict"

type OrgUnit struct {
	BaseModel
	Nom       string `gorm:"type:varchar(150)"`
	TypeUnite string `gorm:"type:varchar(50)"`
}

func (r OrgUnit) ToModel() dictapimodels.OrgUnitView {
	return dictapimodels.OrgUnitView{
		ID: r.ID,
		OrgUnitData: dictapimodels.OrgUnitData{
			Nom:       r.Nom,
			TypeUnite: r.TypeUnite,
		},
	}
}
