package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ImageList is an ordered set of image URLs stored as a JSON text column.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *ImageList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = ImageList{}
		return nil
	case []byte:
		if len(v) == 0 {
			*l = ImageList{}
			return nil
		}
		return json.Unmarshal(v, l)
	case string:
		if v == "" {
			*l = ImageList{}
			return nil
		}
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported image list source type %T", src)
	}
}

type Item struct {
	ID               string    `gorm:"primaryKey;size:36"`
	Name             string    `gorm:"size:120;not null"`
	Type             string    `gorm:"size:60;not null"`
	Description      string    `gorm:"type:text;not null"`
	CoverImage       string    `gorm:"size:512;not null"`
	AdditionalImages ImageList `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (Item) TableName() string {
	return "items"
}
