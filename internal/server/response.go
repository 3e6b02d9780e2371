package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const teapotArt = "\n" +
	"             ;,'\n" +
	"     _o_    ;:;'\n" +
	" ,-.'---`.__ ;\n" +
	"((j`=====',-'\n" +
	" `-\\     /\n" +
	"    `-=-'     hjw\n"

func routeError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid route."})
}

func missingAddress(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "No address provided."})
}

func invalidAddress(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid address provided."})
}

func missingAuth(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No API key provided."})
}

func invalidAuth(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key provided."})
}

func teapot(c *gin.Context) {
	c.String(http.StatusTeapot, teapotArt)
}

func rateLimited(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests."})
}

func internalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal API error."})
}
