package specification

import "gorm.io/gorm"

// ByClassName filters taxonomy entries by owning taxonomy.
type ByClassName struct {
	ClassName string
}

func (s ByClassName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("class_name = ?", s.ClassName)
}

// ByName filters by the entry identifier.
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// ByParent filters entries attached to a given parent identifier.
type ByParent struct {
	Parent string
}

func (s ByParent) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("parent = ?", s.Parent)
}

// RootsOnly keeps entries sitting directly under the taxonomy root.
type RootsOnly struct{}

func (s RootsOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("parent IS NULL")
}
