package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TaxonomyEntry struct {
	Id        uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClassName string                      `gorm:"type:varchar(50);not null;index:idx_taxonomy_class_name,priority:1;uniqueIndex:idx_taxonomy_entry_name,priority:1"`
	Name      string                      `gorm:"type:varchar(255);not null;uniqueIndex:idx_taxonomy_entry_name,priority:2"`
	Parent    *string                     `gorm:"type:varchar(255);index"`
	Title     string                      `gorm:"type:varchar(255);not null"`
	Synonyms  datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt time.Time                   `gorm:"autoUpdateTime"`
}

func (TaxonomyEntry) TableName() string {
	return "taxonomy_entries"
}
