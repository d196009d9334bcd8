package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/apierror"
)

// Per-IP sliding-window counters. Two independent instances run in the router:
// a tight one on /api/auth/login and a loose one over the whole API.

type ventana struct {
	count int
	fin   time.Time
	mu    sync.Mutex
}

type limitador struct {
	mu       sync.Mutex
	porIP    map[string]*ventana
	limite   int
	duracion time.Duration
	mensaje  string
}

func nuevoLimitador(limite int, duracion time.Duration, mensaje string) *limitador {
	l := &limitador{
		porIP:    make(map[string]*ventana),
		limite:   limite,
		duracion: duracion,
		mensaje:  mensaje,
	}
	go l.purgar()
	return l
}

func (l *limitador) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		l.mu.Lock()
		v, ok := l.porIP[ip]
		if !ok {
			v = &ventana{}
			l.porIP[ip] = v
		}
		l.mu.Unlock()

		v.mu.Lock()
		defer v.mu.Unlock()

		now := time.Now()
		if now.After(v.fin) {
			v.count = 0
			v.fin = now.Add(l.duracion)
		}

		v.count++
		if v.count > l.limite {
			c.Header("Retry-After", v.fin.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.mensaje))
			return
		}
		c.Next()
	}
}

// purgar drops idle IPs so the map does not grow with every visitor ever seen.
func (l *limitador) purgar() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0

		l.mu.Lock()
		for ip, v := range l.porIP {
			v.mu.Lock()
			if now.After(v.fin) {
				delete(l.porIP, ip)
				purged++
			}
			v.mu.Unlock()
		}
		l.mu.Unlock()

		if purged > 0 {
			log.Debug().Int("entries_purged", purged).Msg("rate limiter map purged")
		}
	}
}

// LoginRateLimiter throttles brute-force attempts: 20 logins per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return nuevoLimitador(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.").handler()
}

// RateLimiter is the general per-IP limiter applied to the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return nuevoLimitador(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.").handler()
}
