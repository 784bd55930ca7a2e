package models

// ContextKey - типизированный ключ для данных пользователя в context.Context.
// Личность всегда передаётся явно через контекст запроса, глобального
// "текущего пользователя" в приложении нет.
type ContextKey string

const (
	ContextUserID ContextKey = "userID"
	ContextEmail  ContextKey = "email"
)
