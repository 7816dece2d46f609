package context

import (
	"context"

	"github.com/muhammadheryan/wms-fulfillment/constant"
)

func GetOperatorID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.OperatorIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

func WithOperatorID(ctx context.Context, operatorID string) context.Context {
	return context.WithValue(ctx, constant.OperatorIDKey, operatorID)
}
