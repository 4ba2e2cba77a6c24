package models

// Category 分类按 (name, owner) 唯一 name 入库前统一 trim+小写
type Category struct {
	ID      uint64 `gorm:"column:id;primary_key" json:"id"`
	Name    string `gorm:"column:name;type:varchar(50);not null;uniqueIndex:idx_name_owner" json:"name"`
	OwnerID uint64 `gorm:"column:owner_id;not null;uniqueIndex:idx_name_owner" json:"owner_id"`
}

func (c Category) TableName() string {
	return "categories"
}
