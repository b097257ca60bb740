package user

import (
	"filedrop-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		UUID:      uDomain.UUID,
		FullName:  uDomain.FullName,
		Email:     uDomain.Email,
		CreatedAt: uDomain.CreatedAt,
	}

	return u
}
