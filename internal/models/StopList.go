package models

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StopList is an ordered list of stop names. It is stored as text[] on
// Postgres and as the same array literal in a text column elsewhere.
type StopList []string

// Value implements driver.Valuer.
func (s StopList) Value() (driver.Value, error) {
	return pq.StringArray(s).Value()
}

// Scan implements sql.Scanner.
func (s *StopList) Scan(src interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*s = StopList(arr)
	return nil
}

// GormDataType implements schema.GormDataTypeInterface.
func (StopList) GormDataType() string {
	return "stoplist"
}

// GormDBDataType picks the column type per dialect.
func (StopList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}
