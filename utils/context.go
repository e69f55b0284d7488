package utils

import (
	"context"

	"github.com/google/uuid"
)

type rqIDKey struct{}

func GetRequestIDFromCtx(ctx context.Context) string {
	rqID, ok := ctx.Value(rqIDKey{}).(string)
	if !ok {
		return ""
	}
	return rqID
}

// CtxWithRqID returns ctx carrying a fresh request id, or the one already stored in it.
func CtxWithRqID(ctx context.Context) context.Context {
	if _, ok := ctx.Value(rqIDKey{}).(string); ok {
		return ctx
	}
	return context.WithValue(ctx, rqIDKey{}, uuid.NewString())
}
