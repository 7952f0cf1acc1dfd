package services

import (
	"context"
	"strings"

	"github.com/denmor86/ya-shopadmin/internal/client"
	"github.com/denmor86/ya-shopadmin/internal/models"
	"github.com/denmor86/ya-shopadmin/internal/notify"
	"github.com/denmor86/ya-shopadmin/internal/validators"
)

// Testimonials - отзывы покупателей
type Testimonials struct {
	*Editor[models.Testimonial]
	API *client.Client
}

func NewTestimonials(api *client.Client, notifier notify.Notifier) *Testimonials {
	return &Testimonials{
		Editor: NewEditor("testimonials", api.GetTestimonials, notifier, "Failed to load testimonials"),
		API:    api,
	}
}

// Save создаёт отзыв или обновляет существующий. При обновлении уже
// загруженные медиа сохраняются.
func (t *Testimonials) Save(ctx context.Context, form models.TestimonialForm, avatar *models.Upload, media []models.Upload) error {
	form.ID = strings.TrimSpace(form.ID)
	if err := validators.Validate(form); err != nil {
		return t.invalid("Customer name and content are required", err)
	}
	if form.Language == "" {
		form.Language = "en"
	}

	success := "Testimonial created"
	var keep []models.MediaRef
	if form.ID != "" {
		success = "Testimonial updated"
		current, err := t.Store.Find(func(it models.Testimonial) bool { return it.ID == form.ID })
		if err == nil {
			keep = current.Media
		}
	}
	return t.mutate(ctx, success, "Save failed", func(ctx context.Context) (string, error) {
		return "", t.API.SaveTestimonial(ctx, form, avatar, media, keep)
	})
}

func (t *Testimonials) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if err := validators.Required("id", id); err != nil {
		return t.invalid("Select testimonial", err)
	}
	return t.mutate(ctx, "Deleted", "Delete failed", func(ctx context.Context) (string, error) {
		return "", t.API.DeleteTestimonial(ctx, id)
	})
}

// SetStatus переключает published/featured; успех без уведомления
func (t *Testimonials) SetStatus(ctx context.Context, id string, status models.TestimonialStatus) error {
	id = strings.TrimSpace(id)
	if err := validators.Required("id", id); err != nil {
		return t.invalid("Select testimonial", err)
	}
	return t.mutate(ctx, "", MsgUpdateFailed, func(ctx context.Context) (string, error) {
		return "", t.API.SetTestimonialStatus(ctx, id, status)
	})
}

// Reorder - порядок отзывов по позиции id в списке
func (t *Testimonials) Reorder(ctx context.Context, ids []string) error {
	items := make([]models.ReorderItem, 0, len(ids))
	for i, id := range ids {
		items = append(items, models.ReorderItem{ID: id, SortOrder: i})
	}
	return t.mutate(ctx, "Reordered", "Reorder failed", func(ctx context.Context) (string, error) {
		return "", t.API.ReorderTestimonials(ctx, models.ReorderRequest{Items: items})
	})
}
