package models

// MediaRef - загруженный медиафайл отзыва
type MediaRef struct {
	URL  string `json:"url"`
	Type string `json:"type,omitempty"`
	Alt  string `json:"alt,omitempty"`
}

// Testimonial - отзыв покупателя
type Testimonial struct {
	ID           string     `json:"_id"`
	CustomerName string     `json:"customerName"`
	Headline     string     `json:"headline,omitempty"`
	Content      string     `json:"content"`
	Rating       int        `json:"rating,omitempty"`
	ProductID    string     `json:"productId,omitempty"`
	ProductName  string     `json:"productName,omitempty"`
	Location     string     `json:"location,omitempty"`
	Language     string     `json:"language,omitempty"`
	Featured     bool       `json:"featured"`
	SortOrder    int        `json:"sortOrder"`
	Published    bool       `json:"published"`
	AvatarURL    string     `json:"avatarUrl,omitempty"`
	Media        []MediaRef `json:"media,omitempty"`
}

// TestimonialsResponse - ответ бэкенда со списком отзывов
type TestimonialsResponse struct {
	Data []Testimonial `json:"data"`
}

// TestimonialForm - форма создания/редактирования отзыва
type TestimonialForm struct {
	// ID - пустой при создании
	ID           string `json:"id,omitempty"`
	CustomerName string `json:"customerName" validate:"required"`
	Headline     string `json:"headline"`
	Content      string `json:"content" validate:"required"`
	Rating       int    `json:"rating"`
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	Location     string `json:"location"`
	Language     string `json:"language"`
	Featured     bool   `json:"featured"`
	SortOrder    int    `json:"sortOrder"`
	Published    bool   `json:"published"`
}

// Upload - файл, прикладываемый к multipart-запросу
type Upload struct {
	Filename string `json:"filename"`
	Content  []byte `json:"content"`
}

// TestimonialStatus - переключение флагов публикации
type TestimonialStatus struct {
	Published *bool `json:"published,omitempty"`
	Featured  *bool `json:"featured,omitempty"`
}

// ReorderItem - новая позиция отзыва
type ReorderItem struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sortOrder"`
}

// ReorderRequest - тело запроса переупорядочивания
type ReorderRequest struct {
	Items []ReorderItem `json:"items"`
}
