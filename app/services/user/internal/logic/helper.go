package logic

import (
	model "KissaHub/app/dal/user"
	"KissaHub/app/services/user/internal/types"
)

func userToView(u *model.Users) *types.User {
	if u == nil {
		return nil
	}
	return &types.User{
		Id:        u.Id,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Unix(),
	}
}
