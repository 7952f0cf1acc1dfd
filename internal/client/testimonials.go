package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/denmor86/ya-shopadmin/internal/models"
	json "github.com/goccy/go-json"
)

const (
	testimonialsAllPath = "/api/testimonials/all"
	testimonialsPath    = "/api/testimonials"
	reorderPath         = "/api/testimonials/reorder"
)

func (c *Client) GetTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var result models.TestimonialsResponse
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: testimonialsAllPath}, nil, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		return []models.Testimonial{}, nil
	}
	return result.Data, nil
}

// SaveTestimonial - создание (пустой ID) или обновление отзыва.
// keepMedia передаётся только при обновлении: медиа, которые надо сохранить.
func (c *Client) SaveTestimonial(ctx context.Context, form models.TestimonialForm, avatar *models.Upload, media []models.Upload, keepMedia []models.MediaRef) error {
	fields := []formField{
		textField("customerName", form.CustomerName),
		textField("headline", form.Headline),
		textField("content", form.Content),
		textField("productId", form.ProductID),
		textField("productName", form.ProductName),
		textField("location", form.Location),
		textField("language", form.Language),
		textField("featured", strconv.FormatBool(form.Featured)),
		textField("sortOrder", strconv.Itoa(form.SortOrder)),
		textField("published", strconv.FormatBool(form.Published)),
	}
	if form.Rating > 0 {
		fields = append(fields, textField("rating", strconv.Itoa(form.Rating)))
	} else {
		fields = append(fields, textField("rating", ""))
	}
	if avatar != nil {
		fields = append(fields, fileField("avatar", avatar.Filename, avatar.Content))
	}
	for _, m := range media {
		fields = append(fields, fileField("media", m.Filename, m.Content))
	}

	method, path := http.MethodPost, testimonialsPath
	if form.ID != "" {
		if keepMedia == nil {
			keepMedia = []models.MediaRef{}
		}
		keep, err := json.Marshal(keepMedia)
		if err != nil {
			return fmt.Errorf("failed to encode keepMedia: %w", err)
		}
		fields = append(fields, textField("keepMedia", string(keep)))
		method, path = http.MethodPut, testimonialsPath+"/"+url.PathEscape(form.ID)
	}

	body, contentType, err := encodeForm(fields)
	if err != nil {
		return err
	}
	return c.do(ctx, request{method: method, path: path, body: body, contentType: contentType}, nil)
}

func (c *Client) DeleteTestimonial(ctx context.Context, id string) error {
	return c.doJSON(ctx, request{method: http.MethodDelete, path: testimonialsPath + "/" + url.PathEscape(id)}, nil, nil)
}

func (c *Client) SetTestimonialStatus(ctx context.Context, id string, status models.TestimonialStatus) error {
	path := testimonialsPath + "/" + url.PathEscape(id) + "/status"
	return c.doJSON(ctx, request{method: http.MethodPatch, path: path}, status, nil)
}

func (c *Client) ReorderTestimonials(ctx context.Context, req models.ReorderRequest) error {
	return c.doJSON(ctx, request{method: http.MethodPatch, path: reorderPath}, req, nil)
}
