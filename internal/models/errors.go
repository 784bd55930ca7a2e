package models

import "errors"

// Общие виды ошибок; слои оборачивают их через fmt.Errorf("...: %w", ...),
// а хендлеры сопоставляют с HTTP-статусами через errors.Is.
var (
	ErrNotFound      = errors.New("не найдено")
	ErrValidation    = errors.New("некорректные данные")
	ErrInvalidInput  = errors.New("некорректный ввод")
	ErrAlreadyExists = errors.New("уже существует")
)
