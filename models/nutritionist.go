package models

type Nutritionist struct {
	UserID         uint   `gorm:"primaryKey" json:"user_id"`
	User           User   `json:"user"`
	Specialization string `gorm:"size:100" json:"specialization"`
	LicenseNumber  string `gorm:"size:50" json:"license_number"`
}
