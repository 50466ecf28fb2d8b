package dto

import (
	"drivent/internal/domains/user/model"
	"drivent/shared/constant"
	gDto "drivent/shared/dto"
	"drivent/shared/timezone"
)

type UserResponse struct {
	ID        int     `json:"id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	LastLogin *string `json:"lastLogin"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Email = user.Email
	r.Role = user.Role
	r.Metadata.FromModel(user.Metadata)

	if user.LastLogin != nil {
		lastLogin := timezone.Format(*user.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}
}
