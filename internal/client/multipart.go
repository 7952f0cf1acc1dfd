package client

import (
	"bytes"
	"fmt"
	"mime/multipart"
)

// formField - поле multipart-формы: значение либо файл
type formField struct {
	name     string
	value    string
	filename string
	content  []byte
}

func textField(name, value string) formField {
	return formField{name: name, value: value}
}

func fileField(name, filename string, content []byte) formField {
	if filename == "" {
		filename = name
	}
	return formField{name: name, filename: filename, content: content}
}

// encodeForm собирает тело multipart/form-data и его Content-Type
func encodeForm(fields []formField) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range fields {
		if f.filename == "" {
			if err := w.WriteField(f.name, f.value); err != nil {
				return nil, "", fmt.Errorf("write field %s: %w", f.name, err)
			}
			continue
		}
		part, err := w.CreateFormFile(f.name, f.filename)
		if err != nil {
			return nil, "", fmt.Errorf("create file %s: %w", f.name, err)
		}
		if _, err := part.Write(f.content); err != nil {
			return nil, "", fmt.Errorf("write file %s: %w", f.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
