package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"walletscope/internal/auth"
)

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	return cors.New(cfg)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

// authorize resolves the caller's tier from the key query parameter and
// enforces the tier's request allowance. Without a configured keyring every
// caller gets the free allowance, counted per client IP.
func (s *Server) authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limiter == nil {
			c.Next()
			return
		}

		key := c.Query("key")
		tier := auth.FreeTierID
		id := auth.Hash(c.ClientIP())

		if s.keyring != nil && !s.keyring.Empty() {
			if key == "" {
				missingAuth(c)
				return
			}
			resolved, ok := s.keyring.Resolve(key)
			if !ok {
				invalidAuth(c)
				return
			}
			tier = resolved
			id = auth.Hash(key)
		}

		ok, err := s.limiter.Allow(c.Request.Context(), id, auth.TierLimit(tier), s.window)
		if err != nil {
			s.logger.Warn("rate limit check failed", zap.Error(err))
		}
		if !ok {
			rateLimited(c)
			return
		}
		c.Next()
	}
}
