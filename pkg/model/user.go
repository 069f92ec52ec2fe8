package model

import (
	"fmt"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username    string `gorm:"size:150;not null"`
	FirstName   string `gorm:"size:150"`
	LastName    string `gorm:"size:150"`
	Email       string `gorm:"size:254;uniqueIndex;not null"`
	IsStaff     bool
	IsSuperuser bool

	Recipes []Recipe `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`

	// Viewer-relative fields, only populated by annotated queries.
	IsSubscribed bool  `gorm:"->;-:migration"`
	RecipesCount int64 `gorm:"->;-:migration"`
}

func (u User) String() string {
	return fmt.Sprintf("User(%d, %s)", u.ID, u.Username)
}

// CanModify reports whether the user may change or remove something owned by ownerID.
func (u *User) CanModify(ownerID uint) bool {
	if u == nil {
		return false
	}

	return u.ID == ownerID || u.IsStaff || u.IsSuperuser
}

// ViewerID returns the id used when computing viewer-relative fields.
// Anonymous viewers map to 0, which never matches a stored row.
func ViewerID(viewer *User) uint {
	if viewer == nil {
		return 0
	}

	return viewer.ID
}
