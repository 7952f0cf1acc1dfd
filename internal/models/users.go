package models

// LoginRequest - учётные данные администратора, приходят извне
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - ответ бэкенда на вход администратора
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// MessageResponse - общий ответ бэкенда на изменяющие запросы
type MessageResponse struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
}
