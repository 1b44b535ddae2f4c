package main

// middleware module provides various middleware modules for our server
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	limiter "github.com/ulule/limiter/v3"
	stdlib "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
	"github.com/uptrace/bunrouter"
)

// newLimiter creates limiter middleware with given rate, e.g. 100-S
func newLimiter(period string) (*stdlib.Middleware, error) {
	log.Info().Str("rate", period).Msg("limiter")
	rate, err := limiter.NewRateFromFormatted(period)
	if err != nil {
		return nil, err
	}
	store := memory.NewStore()
	instance := limiter.New(store, rate)
	return stdlib.NewMiddleware(instance), nil
}

// responseWriter is a minimal wrapper for http.ResponseWriter that allows the
// written HTTP status code to be captured for logging.
type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

// wrapper for response writer
// based on https://blog.questionable.services/article/guide-logging-middleware-go/
func wrapResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w}
}

func (rw *responseWriter) Status() int {
	return rw.status
}

func (rw *responseWriter) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
	rw.wroteHeader = true
}

// bunrouter logging middleware implementation
func bunrouterLoggingMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, r bunrouter.Request) error {
		start := time.Now()
		wrapped := wrapResponseWriter(w)
		err := next(wrapped, r)
		logRequest(r.Request, start, wrapped.status)
		return err
	}
}

// bunrouter limiter middleware implementation, based on
// https://github.com/ulule/limiter/blob/master/drivers/middleware/stdlib/middleware.go#L36
func bunrouterLimitMiddleware(lm *stdlib.Middleware) bunrouter.MiddlewareFunc {
	return func(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
		return func(w http.ResponseWriter, req bunrouter.Request) error {
			r := req.Request
			key := lm.KeyGetter(r)
			if lm.ExcludedKey != nil && lm.ExcludedKey(key) {
				return next(w, req)
			}

			context, err := lm.Limiter.Get(r.Context(), key)
			if err != nil {
				lm.OnError(w, r, err)
				return err
			}

			w.Header().Add("X-RateLimit-Limit", strconv.FormatInt(context.Limit, 10))
			w.Header().Add("X-RateLimit-Remaining", strconv.FormatInt(context.Remaining, 10))
			w.Header().Add("X-RateLimit-Reset", strconv.FormatInt(context.Reset, 10))

			if context.Reached {
				log.Debug().Str("key", key).Msg("rate limit reached")
				lm.OnLimitReached(w, r)
				return nil
			}
			// execute next ServeHTTP middleware/step
			return next(w, req)
		}
	}
}
