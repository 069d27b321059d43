package userservice

// User модель пользователя из UserService
// Сервис идентичности отвечает за регистрацию и сессии; здесь нужны
// только идентификатор и роли для проверок host/renter
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsHost   bool   `json:"is_host"`
	IsRenter bool   `json:"is_renter"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
