package services

import (
	"context"
	"strings"

	"github.com/denmor86/ya-shopadmin/internal/client"
	"github.com/denmor86/ya-shopadmin/internal/models"
	"github.com/denmor86/ya-shopadmin/internal/notify"
	"github.com/denmor86/ya-shopadmin/internal/validators"
)

// Categories - категории и подкатегории
type Categories struct {
	*Editor[models.Category]
	API *client.Client
}

func NewCategories(api *client.Client, notifier notify.Notifier) *Categories {
	return &Categories{
		Editor: NewEditor("categories", api.GetCategories, notifier, "Failed to fetch categories"),
		API:    api,
	}
}

func (c *Categories) Add(ctx context.Context, req models.CategoryRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if err := validators.Validate(req); err != nil {
		return c.invalid("Enter category name", err)
	}
	return c.mutate(ctx, "Category added", "Failed to add category", func(ctx context.Context) (string, error) {
		return "", c.API.AddCategory(ctx, req)
	})
}

func (c *Categories) AddSubcategory(ctx context.Context, req models.SubcategoryRequest) error {
	req.Subcategory = strings.TrimSpace(req.Subcategory)
	if err := validators.Validate(req); err != nil {
		return c.invalid("Select category and enter subcategory", err)
	}
	return c.mutate(ctx, "Subcategory added", "Failed to add subcategory", func(ctx context.Context) (string, error) {
		return "", c.API.AddSubcategory(ctx, req)
	})
}

func (c *Categories) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if err := validators.Required("id", id); err != nil {
		return c.invalid("Select category", err)
	}
	return c.mutate(ctx, "Category deleted", "Failed to delete category", func(ctx context.Context) (string, error) {
		return "", c.API.DeleteCategory(ctx, id)
	})
}

func (c *Categories) DeleteSubcategory(ctx context.Context, req models.SubcategoryDeleteRequest) error {
	if err := validators.Validate(req); err != nil {
		return c.invalid("Select category and subcategory", err)
	}
	return c.mutate(ctx, "Subcategory deleted", "Failed to delete subcategory", func(ctx context.Context) (string, error) {
		return "", c.API.DeleteSubcategory(ctx, req)
	})
}

// Offers - акции со скидками
type Offers struct {
	*Editor[models.Offer]
	API *client.Client
}

func NewOffers(api *client.Client, notifier notify.Notifier) *Offers {
	return &Offers{
		Editor: NewEditor("offers", api.GetOffers, notifier, "Failed to fetch offers"),
		API:    api,
	}
}

func (o *Offers) Add(ctx context.Context, req models.OfferRequest) error {
	if strings.TrimSpace(req.Code) == "" {
		return o.invalid("Offer code is required", validators.Required("code", ""))
	}
	if err := validators.Validate(req); err != nil {
		return o.invalid("Add at least one discount rule", err)
	}
	if req.Categories == nil {
		req.Categories = []string{}
	}
	return o.mutate(ctx, "Offer created", "Failed to create offer", func(ctx context.Context) (string, error) {
		return "", o.API.AddOffer(ctx, req)
	})
}

func (o *Offers) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if err := validators.Required("id", id); err != nil {
		return o.invalid("Select offer", err)
	}
	return o.mutate(ctx, "Offer deleted", "Failed to delete offer", func(ctx context.Context) (string, error) {
		return o.API.DeleteOffer(ctx, id)
	})
}
