package logging

import (
	"context"
	"maps"

	"github.com/rs/zerolog"
)

// contextHook copies the fields stored in the event's context onto the event.
type contextHook struct{}

func (h contextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil {
		return
	}
	fctx, ok := ctx.Value(fieldContextKey{}).(fieldContext)
	if !ok {
		return
	}
	for k, v := range fctx.strValues {
		e.Str(k, v)
	}
	for k, v := range fctx.intValues {
		e.Int(k, v)
	}
}

type fieldContextKey struct{}
type fieldContext struct {
	strValues map[string]string
	intValues map[string]int
}

// getFieldContext returns a copy of the fields in ctx that is safe to modify
// without affecting the parent context.
func getFieldContext(ctx context.Context) fieldContext {
	if v, ok := ctx.Value(fieldContextKey{}).(fieldContext); ok {
		return fieldContext{
			strValues: maps.Clone(v.strValues),
			intValues: maps.Clone(v.intValues),
		}
	}
	return fieldContext{
		strValues: make(map[string]string),
		intValues: make(map[string]int),
	}
}

// ContextWithStr adds a string to the context such that it will be included in all log lines printed with this context.
func ContextWithStr(ctx context.Context, key, value string) context.Context {
	fctx := getFieldContext(ctx)
	fctx.strValues[key] = value
	return context.WithValue(ctx, fieldContextKey{}, fctx)
}

// ContextWithInt adds an int to the context such that it will be included in all log lines printed with this context.
func ContextWithInt(ctx context.Context, key string, value int) context.Context {
	fctx := getFieldContext(ctx)
	fctx.intValues[key] = value
	return context.WithValue(ctx, fieldContextKey{}, fctx)
}
