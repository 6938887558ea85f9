package util

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"KissaHub/app/common/consts/biz"
	"KissaHub/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

func UserIdFromCtx(ctx context.Context) (int64, error) {
	if ctx == nil {
		return 0, errors.New(errno.IdentityMissing, "missing context")
	}

	switch val := ctx.Value(biz.USER_KEY).(type) {
	case int64:
		return val, nil
	}

	return 0, errors.New(errno.IdentityMissing, errno.Message(errno.IdentityMissing))
}

func InjectUserId2Ctx(r *http.Request, userId int64) {
	ctx := context.WithValue(r.Context(), biz.USER_KEY, userId)
	*r = *r.WithContext(ctx)
}

// UserIdFromHeader parses the identity header forwarded by the gateway.
func UserIdFromHeader(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.Header.Get(biz.USER_ID_HEADER))
	if raw == "" {
		return 0, errors.New(errno.IdentityMissing, errno.Message(errno.IdentityMissing))
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New(errno.IdentityInvalid, errno.Message(errno.IdentityInvalid))
	}
	return id, nil
}
