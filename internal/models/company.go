package models

// Company 對應 company 資料表的一列
type Company struct {
	CompanyID   string `gorm:"column:COMPANY_ID;primaryKey;size:6" json:"COMPANY_ID"`
	CompanyName string `gorm:"column:COMPANY_NAME;size:25" json:"COMPANY_NAME"`
	CompanyCity string `gorm:"column:COMPANY_CITY;size:25" json:"COMPANY_CITY"`
}

func (Company) TableName() string {
	return "company"
}
