package dbmodels

// Document référence un justificatif stocké dans S3.
type Document struct {
	BaseModel
	Matricule      string `gorm:"type:varchar(20);index"`
	LeaveRequestID *string
	FileName       string `gorm:"type:varchar(255)"`
	ContentType    string `gorm:"type:varchar(100)"`
	S3Key          string `gorm:"type:varchar(255)"`
}
