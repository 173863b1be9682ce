package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// BaseModel replaces gorm.Model for tables keyed by a string id.
type BaseModel struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JSON stores any value as a JSON text column.
type JSON[T any] struct {
	Data T
}

// NewJSON wraps v for storage.
func NewJSON[T any](v T) JSON[T] {
	return JSON[T]{Data: v}
}

// GormDataType stores the value as text on every driver.
func (JSON[T]) GormDataType() string {
	return "text"
}

func (j JSON[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(j.Data)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan unmarshals a JSON column. Postgres hands back []byte, sqlite a string.
func (j *JSON[T]) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, &j.Data)
	case string:
		return json.Unmarshal([]byte(v), &j.Data)
	case nil:
		var zero T
		j.Data = zero
		return nil
	}
	return fmt.Errorf("JSON: expected []byte or string, got %T", src)
}
