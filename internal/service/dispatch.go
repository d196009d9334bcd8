package service

import "context"

// AuditoriaDispatcher is the slice of the worker dispatcher the services use
// to enqueue audit-trail jobs. Interface so unit tests can capture payloads.
type AuditoriaDispatcher interface {
	EnqueueAuditoria(ctx context.Context, payload interface{}) error
}

// EmailDispatcher enqueues boleta-email jobs.
type EmailDispatcher interface {
	EnqueueEmail(ctx context.Context, payload interface{}) error
}

type ctxKey int

const ctxKeyUsuario ctxKey = iota

// ConUsuario stamps the authenticated username into the context so the audit
// trail can attribute operations. Set by the auth middleware.
func ConUsuario(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, ctxKeyUsuario, username)
}

func usuarioDesdeCtx(ctx context.Context) string {
	if u, ok := ctx.Value(ctxKeyUsuario).(string); ok {
		return u
	}
	return "sistema"
}
