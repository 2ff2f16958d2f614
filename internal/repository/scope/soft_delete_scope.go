package scope

import "gorm.io/gorm"

// OnlyDeleted lists the recycle bin: soft-deleted rows only.
func OnlyDeleted(db *gorm.DB) *gorm.DB {
	return db.Unscoped().Where("deleted_at IS NOT NULL")
}
