package service

import (
	"errors"

	"github.com/affaneka/portal/database"
	"github.com/affaneka/portal/database/model"
)

// ErrContentFields rejects content writes with an empty title or description.
var ErrContentFields = errors.New("title and description are required")

// ContentService is a CRUD store over one titled-record table. The same
// service backs achievements and works; only the table name differs.
type ContentService struct {
	table string
}

func NewContentService(table string) *ContentService {
	return &ContentService{table: table}
}

func (s *ContentService) Create(title string, description string) (int, error) {
	if title == "" || description == "" {
		return 0, ErrContentFields
	}
	db := database.GetDB()
	item := &model.ContentItem{Title: title, Description: description}
	if err := db.Table(s.table).Create(item).Error; err != nil {
		return 0, err
	}
	return item.Id, nil
}

func (s *ContentService) List() ([]model.ContentItem, error) {
	db := database.GetDB()
	items := make([]model.ContentItem, 0)
	err := db.Table(s.table).Order("id ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns the item or gorm.ErrRecordNotFound.
func (s *ContentService) Get(id int) (*model.ContentItem, error) {
	db := database.GetDB()
	item := &model.ContentItem{}
	err := db.Table(s.table).Where("id = ?", id).First(item).Error
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Update overwrites both fields. A missing id is a silent no-op.
func (s *ContentService) Update(id int, title string, description string) error {
	db := database.GetDB()
	return db.Table(s.table).
		Where("id = ?", id).
		Updates(map[string]any{"title": title, "description": description}).
		Error
}

// Delete physically removes the row. A missing id is a silent no-op.
func (s *ContentService) Delete(id int) error {
	db := database.GetDB()
	return db.Table(s.table).
		Where("id = ?", id).
		Delete(&model.ContentItem{}).
		Error
}
