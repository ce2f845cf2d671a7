package server

import "github.com/gin-gonic/gin"

func (s *Server) handleSchemes(c *gin.Context) {
	matched := s.deps.Schemes.Filter(c.Query("category"), c.Query("search"))
	respondOK(c, gin.H{
		"schemes":    matched,
		"categories": s.deps.Schemes.Categories(),
		"total":      len(matched),
	})
}
