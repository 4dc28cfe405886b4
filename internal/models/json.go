package models

import (
	"database/sql/driver"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSON is a wrapper around gorm.io/datatypes.JSON to allow for custom data
// type mapping. Metadata columns on every entity use it.
type JSON struct {
	datatypes.JSON
}

// EmptyJSON returns the default metadata value, an empty object.
func EmptyJSON() JSON {
	return JSON{datatypes.JSON(`{}`)}
}

// NewJSON marshals m into a JSON column value. A nil map becomes the empty
// object so new rows always carry `{}` rather than SQL NULL.
func NewJSON(m map[string]interface{}) (JSON, error) {
	if len(m) == 0 {
		return EmptyJSON(), nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return JSON{}, err
	}
	return JSON{datatypes.JSON(raw)}, nil
}

// AsMap decodes the column back into a map. Empty or NULL columns decode to
// an empty map.
func (j JSON) AsMap() (map[string]interface{}, error) {
	if len(j.JSON) == 0 {
		return map[string]interface{}{}, nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(j.JSON, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]interface{}{}
	}
	return m, nil
}

// Value promotes the embedded JSON's Value method
func (j JSON) Value() (driver.Value, error) {
	return j.JSON.Value()
}

// Scan promotes the embedded JSON's Scan method
func (j *JSON) Scan(value interface{}) error {
	return j.JSON.Scan(value)
}

// GormDBDataType ensures the correct data type is used for each database driver.
// This resolves the issue where MSSQL does not support the 'json' data type.
func (JSON) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}
