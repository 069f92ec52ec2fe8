package model

import "fmt"

type Tag struct {
	ID    uint    `gorm:"primaryKey"`
	Name  string  `gorm:"size:200;uniqueIndex;not null"`
	Color *string `gorm:"size:7;uniqueIndex"`
	Slug  string  `gorm:"size:200;uniqueIndex;not null"`
}

func (t Tag) String() string {
	return fmt.Sprintf("Tag(%d, %s)", t.ID, t.Name)
}

type Ingredient struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:200;index;not null"`
	MeasurementUnit string `gorm:"size:200;not null"`
}

func (i Ingredient) String() string {
	return i.Name
}
