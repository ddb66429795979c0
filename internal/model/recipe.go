package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Amount is a recipe ingredient quantity. The model is asked to return
// amounts as strings like "1/2", but it sometimes sends bare numbers;
// both decode to the string form.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("amount must be a string or a number")
	}
	*a = Amount(n.String())
	return nil
}

// RecipeIngredient is one entry of a generated recipe's ingredient list.
type RecipeIngredient struct {
	Name     string `json:"name"`
	Quantity Amount `json:"quantity"`
	Unit     string `json:"unit"`
}

// RecipeIngredientList stores recipe ingredients as JSONB
type RecipeIngredientList []RecipeIngredient

func (l RecipeIngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

func (l *RecipeIngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = RecipeIngredientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Recipe is created only as the side effect of a successful generation call
// and is never mutated afterward. SavedIngredients keeps the ingredient
// names the user originally selected, independent of what the model put in
// its own ingredient list.
type Recipe struct {
	ID               uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt       `gorm:"index" json:"-"`
	Title            string               `gorm:"size:255;not null" json:"title"`
	Description      string               `gorm:"type:text" json:"description"`
	Ingredients      RecipeIngredientList `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions     JSONBStringArray     `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	PrepTime         int                  `json:"prepTime"`
	CookTime         int                  `json:"cookTime"`
	Servings         int                  `json:"servings"`
	Difficulty       string               `gorm:"size:50" json:"difficulty"`
	Cuisine          string               `gorm:"size:100" json:"cuisine"`
	SavedIngredients JSONBStringArray     `gorm:"type:jsonb;not null;default:'[]'" json:"savedIngredients"`
	UserID           uuid.UUID            `gorm:"type:uuid;not null;index" json:"userId"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
