package models

import (
	"bytes"
	"time"

	json "github.com/goccy/go-json"
)

// Category - категория товаров с подкатегориями
type Category struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Image         string   `json:"image,omitempty"`
	Subcategories []string `json:"subcategories"`
}

// CategoriesResponse - ответ бэкенда со списком категорий
type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// CategoryRequest - форма добавления категории
type CategoryRequest struct {
	Name string `validate:"required"`
	// ImageName/Image - необязательный файл картинки
	ImageName string
	Image     []byte
}

// SubcategoryRequest - добавление подкатегории к категории по имени
type SubcategoryRequest struct {
	CategoryName string `json:"categoryName" validate:"required"`
	Subcategory  string `json:"subcategory" validate:"required"`
}

// SubcategoryDeleteRequest - удаление подкатегории из категории по id
type SubcategoryDeleteRequest struct {
	CategoryID  string `json:"categoryId" validate:"required"`
	Subcategory string `json:"subcategory" validate:"required"`
}

// DiscountRule - скидка для уровня сложности товара
type DiscountRule struct {
	Difficulty         string  `json:"difficulty"`
	DiscountPercentage float64 `json:"discountPercentage"`
}

// OfferCategory - категория акции; бэкенд отдаёт либо id, либо заполненный объект
type OfferCategory struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
}

func (c *OfferCategory) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*c = OfferCategory{ID: id}
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	type plain OfferCategory
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = OfferCategory(p)
	return nil
}

// Label - подпись категории для вывода
func (c OfferCategory) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// Offer - акция со скидками
type Offer struct {
	ID                   string          `json:"_id"`
	Code                 string          `json:"code"`
	Description          string          `json:"description,omitempty"`
	ExpiresAt            *time.Time      `json:"expiresAt,omitempty"`
	DiscountRules        []DiscountRule  `json:"discountRules"`
	Categories           []OfferCategory `json:"categories"`
	ApplyToSubcategories bool            `json:"applyToSubcategories"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// OffersResponse - ответ бэкенда со списком активных акций
type OffersResponse struct {
	Offers []Offer `json:"offers"`
}

// OfferRequest - форма создания акции
type OfferRequest struct {
	Code                 string         `json:"code" validate:"required"`
	Description          string         `json:"description"`
	ExpiresAt            string         `json:"expiresAt"`
	DiscountRules        []DiscountRule `json:"discountRules" validate:"required,min=1"`
	Categories           []string       `json:"categories"`
	ApplyToSubcategories bool           `json:"applyToSubcategories"`
}
