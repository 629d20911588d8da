package response

import (
	"spendlog/internal/core/domain/user"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Email = string(du.Email)
	u.Role = string(du.Role)
	u.CreatedAt = du.CreatedAt
}
