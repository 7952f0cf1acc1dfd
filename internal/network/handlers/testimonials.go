package handlers

import (
	"io"
	"net/http"

	"github.com/denmor86/ya-shopadmin/internal/logger"
	"github.com/denmor86/ya-shopadmin/internal/models"
	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
)

// ReorderBody - id отзывов в новом порядке
type ReorderBody struct {
	IDs []string `json:"ids"`
}

// GetTestimonialsHandler — снимок отзывов
func GetTestimonialsHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, models.TestimonialsResponse{Data: d.Testimonials.Snapshot()})
	})
}

// SaveTestimonialHandler — создание или изменение отзыва.
// multipart: поле data (JSON формы), avatar и media (несколько файлов)
func SaveTestimonialHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			logger.Warn("Invalid testimonial form", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request format")
			return
		}

		var form models.TestimonialForm
		if err := json.Unmarshal([]byte(r.FormValue("data")), &form); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request format")
			return
		}
		if id := chi.URLParam(r, "testimonialID"); id != "" {
			form.ID = id
		}

		avatar, err := readUpload(r, "avatar")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid avatar")
			return
		}
		media, err := readMedia(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid media")
			return
		}

		if err := d.Testimonials.Save(r.Context(), form, avatar, media); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func readMedia(r *http.Request) ([]models.Upload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	var media []models.Upload
	for _, header := range r.MultipartForm.File["media"] {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, err
		}
		media = append(media, models.Upload{Filename: header.Filename, Content: data})
	}
	return media, nil
}

// DeleteTestimonialHandler — удаление отзыва
func DeleteTestimonialHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		if err := d.Testimonials.Delete(r.Context(), chi.URLParam(r, "testimonialID")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// TestimonialStatusHandler — published/featured
func TestimonialStatusHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		var status models.TestimonialStatus
		if !decodeBody(w, r, &status) {
			return
		}
		if err := d.Testimonials.SetStatus(r.Context(), chi.URLParam(r, "testimonialID"), status); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// ReorderTestimonialsHandler — новый порядок отзывов
func ReorderTestimonialsHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		var body ReorderBody
		if !decodeBody(w, r, &body) {
			return
		}
		if err := d.Testimonials.Reorder(r.Context(), body.IDs); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
