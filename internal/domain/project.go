package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringList is an ordered list of strings stored as one jsonb value
type StringList []string

// Value implements driver.Valuer for jsonb storage
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for jsonb storage
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = StringList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for StringList")
	}

	return json.Unmarshal(data, s)
}

// Project is one portfolio entry. OrderIndex controls display order
// across projects, distinct from storage order.
type Project struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"column:title;type:varchar(255)" json:"title"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	Image       string     `gorm:"column:image;type:varchar(500)" json:"image"`
	Skills      StringList `gorm:"column:skills;type:jsonb" json:"skills"`
	Link        string     `gorm:"column:link;type:varchar(500)" json:"link"`
	LinkText    string     `gorm:"column:link_text;type:varchar(100)" json:"link_text"`
	OrderIndex  int        `gorm:"column:order_index;index" json:"order_index"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "work_projects"
}

// SaveProjectRequest is the admin editor save payload for a project
type SaveProjectRequest struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Skills      StringList `json:"skills"`
	Link        string     `json:"link"`
	LinkText    string     `json:"link_text"`
	OrderIndex  int        `json:"order_index"`
}

// ToProject converts the save payload into a Project record.
// Skill tags are deduplicated by value, preserving first occurrence.
func (r *SaveProjectRequest) ToProject() *Project {
	skills := make(StringList, 0, len(r.Skills))
	seen := make(map[string]bool, len(r.Skills))
	for _, skill := range r.Skills {
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		skills = append(skills, skill)
	}

	return &Project{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Skills:      skills,
		Link:        r.Link,
		LinkText:    r.LinkText,
		OrderIndex:  r.OrderIndex,
	}
}
