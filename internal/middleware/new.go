package middleware

import (
	"items-api/pkg/log"
)

// Middleware bundles the gin middlewares shared by every route.
type Middleware struct {
	l              log.Logger
	allowedOrigins []string
}

func New(l log.Logger, allowedOrigins []string) Middleware {
	return Middleware{
		l:              l,
		allowedOrigins: allowedOrigins,
	}
}
