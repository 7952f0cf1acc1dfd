package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/denmor86/ya-shopadmin/internal/models"
)

const (
	categoriesPath        = "/api/category/list"
	categoryAddPath       = "/api/category/add"
	subcategoryAddPath    = "/api/category/add-subcategory"
	subcategoryDeletePath = "/api/category/delete-subcategory"
	categoryPath          = "/api/category/"

	offersPath      = "/api/offer/active"
	offerAddPath    = "/api/offer/add"
	offerDeletePath = "/api/offer/delete/"
)

// GetCategories - список категорий, доступен и без токена
func (c *Client) GetCategories(ctx context.Context) ([]models.Category, error) {
	var result models.CategoriesResponse
	err := c.doJSON(ctx, request{method: http.MethodGet, path: categoriesPath, public: true}, nil, &result)
	if err != nil {
		return nil, err
	}
	if result.Categories == nil {
		return []models.Category{}, nil
	}
	return result.Categories, nil
}

// AddCategory - multipart: name и необязательная картинка image
func (c *Client) AddCategory(ctx context.Context, req models.CategoryRequest) error {
	fields := []formField{textField("name", req.Name)}
	if len(req.Image) > 0 {
		fields = append(fields, fileField("image", req.ImageName, req.Image))
	}
	body, contentType, err := encodeForm(fields)
	if err != nil {
		return err
	}
	return c.do(ctx, request{method: http.MethodPost, path: categoryAddPath, body: body, contentType: contentType}, nil)
}

func (c *Client) AddSubcategory(ctx context.Context, req models.SubcategoryRequest) error {
	return c.doJSON(ctx, request{method: http.MethodPost, path: subcategoryAddPath}, req, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.doJSON(ctx, request{method: http.MethodDelete, path: categoryPath + url.PathEscape(id)}, nil, nil)
}

func (c *Client) DeleteSubcategory(ctx context.Context, req models.SubcategoryDeleteRequest) error {
	return c.doJSON(ctx, request{method: http.MethodPost, path: subcategoryDeletePath}, req, nil)
}

// GetOffers - активные акции
func (c *Client) GetOffers(ctx context.Context) ([]models.Offer, error) {
	var result models.OffersResponse
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: offersPath}, nil, &result); err != nil {
		return nil, err
	}
	if result.Offers == nil {
		return []models.Offer{}, nil
	}
	return result.Offers, nil
}

func (c *Client) AddOffer(ctx context.Context, req models.OfferRequest) error {
	return c.doJSON(ctx, request{method: http.MethodPost, path: offerAddPath}, req, nil)
}

// DeleteOffer возвращает сообщение бэкенда, если оно есть
func (c *Client) DeleteOffer(ctx context.Context, id string) (string, error) {
	var result models.MessageResponse
	err := c.doJSON(ctx, request{method: http.MethodDelete, path: offerDeletePath + url.PathEscape(id)}, nil, &result)
	if err != nil {
		return "", err
	}
	return result.Message, nil
}
