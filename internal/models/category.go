package models

// Category groups transactions for reporting
type Category struct {
	ID            int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string        `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID" json:"subcategories,omitempty"`
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// Subcategory refines a category
type Subcategory struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID int64  `gorm:"not null;index" json:"category_id"`
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
}

// TableName returns the table name for Subcategory
func (s *Subcategory) TableName() string {
	return "subcategories"
}

// Payee is the counterparty of a deposit or withdrawal
type Payee struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

// TableName returns the table name for Payee
func (p *Payee) TableName() string {
	return "payees"
}
