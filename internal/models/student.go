package models

// Student 對應 student 資料表的一列
// 這張表沒有主鍵，只會用來查詢和新增
type Student struct {
	Name    string `gorm:"column:NAME;size:30" json:"NAME"`
	Title   string `gorm:"column:TITLE;size:25" json:"TITLE"`
	Class   string `gorm:"column:CLASS;size:5" json:"CLASS"`
	Section string `gorm:"column:SECTION;size:1" json:"SECTION"` // 單一字元
	RollID  string `gorm:"column:ROLLID;size:10" json:"ROLLID"`
}

func (Student) TableName() string {
	return "student"
}
