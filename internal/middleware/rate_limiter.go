package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/mo826440-cpu/sistema-kioscos/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const purgeInterval = 5 * time.Minute

// ventanaIP counts requests per client IP over fixed windows. Once a window
// expires the counter restarts; there is no token refill or smoothing.
type ventanaIP struct {
	nombre  string
	limite  int
	ventana time.Duration

	mu       sync.Mutex
	contador map[string]*contadorIP
}

type contadorIP struct {
	count int
	hasta time.Time
}

func nuevaVentanaIP(nombre string, limite int, ventana time.Duration) *ventanaIP {
	v := &ventanaIP{
		nombre:   nombre,
		limite:   limite,
		ventana:  ventana,
		contador: make(map[string]*contadorIP),
	}
	go v.purgar()
	return v
}

// permitir registers one request from ip and reports whether it is under the
// limit. The window end is returned for the Retry-After header.
func (v *ventanaIP) permitir(ip string) (bool, time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := time.Now()
	c, ok := v.contador[ip]
	if !ok || now.After(c.hasta) {
		c = &contadorIP{hasta: now.Add(v.ventana)}
		v.contador[ip] = c
	}
	c.count++
	return c.count <= v.limite, c.hasta
}

// purgar periodically drops counters whose window already ended. IPs that
// never come back would otherwise stay in the map forever.
func (v *ventanaIP) purgar() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		v.mu.Lock()
		purged := 0
		for ip, c := range v.contador {
			if now.After(c.hasta) {
				delete(v.contador, ip)
				purged++
			}
		}
		v.mu.Unlock()
		if purged > 0 {
			log.Debug().
				Str("limiter", v.nombre).
				Int("entries_purged", purged).
				Msg("rate limiter map purged")
		}
	}
}

// LoginRateLimiter caps login attempts at 20 per minute per IP. It sits only
// on the login route, in front of the credential check.
func LoginRateLimiter() gin.HandlerFunc {
	v := nuevaVentanaIP("login", 20, time.Minute)
	return func(c *gin.Context) {
		if ok, _ := v.permitir(c.ClientIP()); !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiados intentos de login. Intente en 1 minuto."))
			return
		}
		c.Next()
	}
}

// RateLimiter is the global per-IP limiter applied to every route.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	v := nuevaVentanaIP("api", limit, window)
	return func(c *gin.Context) {
		ok, hasta := v.permitir(c.ClientIP())
		if !ok {
			c.Header("Retry-After", hasta.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}
