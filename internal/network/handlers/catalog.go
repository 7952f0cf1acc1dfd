package handlers

import (
	"io"
	"net/http"

	"github.com/denmor86/ya-shopadmin/internal/logger"
	"github.com/denmor86/ya-shopadmin/internal/models"
	"github.com/go-chi/chi/v5"
)

const maxUploadMemory = 32 << 20

// readUpload - файл из multipart-формы; отсутствие файла не ошибка
func readUpload(r *http.Request, field string) (*models.Upload, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &models.Upload{Filename: header.Filename, Content: data}, nil
}

// GetCategoriesHandler — снимок категорий
func GetCategoriesHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, models.CategoriesResponse{Categories: d.Categories.Snapshot()})
	})
}

// AddCategoryHandler — multipart: name и необязательный image
func AddCategoryHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			logger.Warn("Invalid category form", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request format")
			return
		}
		req := models.CategoryRequest{Name: r.FormValue("name")}
		image, err := readUpload(r, "image")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid image")
			return
		}
		if image != nil {
			req.ImageName, req.Image = image.Filename, image.Content
		}
		if err := d.Categories.Add(r.Context(), req); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
}

// AddSubcategoryHandler — подкатегория к категории по имени
func AddSubcategoryHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		var req models.SubcategoryRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if err := d.Categories.AddSubcategory(r.Context(), req); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
}

// DeleteCategoryHandler — удаление категории
func DeleteCategoryHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		if err := d.Categories.Delete(r.Context(), chi.URLParam(r, "categoryID")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// DeleteSubcategoryHandler — удаление подкатегории
func DeleteSubcategoryHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		var req models.SubcategoryDeleteRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if err := d.Categories.DeleteSubcategory(r.Context(), req); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// GetOffersHandler — снимок активных акций
func GetOffersHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, models.OffersResponse{Offers: d.Offers.Snapshot()})
	})
}

// AddOfferHandler — новая акция
func AddOfferHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		var req models.OfferRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if err := d.Offers.Add(r.Context(), req); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
}

// DeleteOfferHandler — удаление акции
func DeleteOfferHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := dashboard(w, r)
		if !ok {
			return
		}
		if err := d.Offers.Delete(r.Context(), chi.URLParam(r, "offerID")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
