package model

import "time"

type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleMentor   UserRole = "mentor"
	UserRoleAdmin    UserRole = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	TelegramID   int64     `json:"telegram_id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	LanguageCode string    `json:"language_code"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// DisplayName возвращает имя пользователя для показа в сообщениях
func (u *User) DisplayName() string {
	if u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.FirstName
}

// IsMentor проверяет, ведёт ли пользователь курсы
func (u *User) IsMentor() bool {
	return u.Role == UserRoleMentor || u.Role == UserRoleAdmin
}
