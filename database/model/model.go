package model

// Account is a login account. Rows are never physically removed: Deleted
// hides them from every read and from login. Active is a separate flag kept
// for callers; login does not consult it.
type Account struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password;not null"`
	Role         string `json:"role" gorm:"not null"`
	Deleted      bool   `json:"-" gorm:"not null;default:false"`
	Active       bool   `json:"active" gorm:"not null;default:true"`
}

// ContentItem is a titled text record. The same shape backs the achievements
// and works tables; the table is chosen per query, so no TableName here.
type ContentItem struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
}
