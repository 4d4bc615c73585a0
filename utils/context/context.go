package context

import (
	"context"

	"github.com/kelasfoto/kelasfoto/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetUserRole(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserRoleKey)
	if v == nil {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}

func GetUserEmail(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserEmailKey)
	if v == nil {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
