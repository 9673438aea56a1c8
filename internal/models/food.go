package models

// Food 對應 foods 資料表的一列
// JSON 欄位名稱沿用資料庫欄位名稱
type Food struct {
	ItemID    string `gorm:"column:ITEM_ID;primaryKey;size:6" json:"ITEM_ID"`
	ItemName  string `gorm:"column:ITEM_NAME;size:40" json:"ITEM_NAME"`
	ItemUnit  string `gorm:"column:ITEM_UNIT;size:5" json:"ITEM_UNIT"` // 計量單位，最多 5 個字元
	CompanyID string `gorm:"column:COMPANY_ID;size:6" json:"COMPANY_ID"`
}

func (Food) TableName() string {
	return "foods"
}
