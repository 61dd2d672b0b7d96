package models

// ErrorResponse - стандартная структура для ответа об ошибке в формате JSON.
// Поле detail сохранено для совместимости с фронтендом.
type ErrorResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}
