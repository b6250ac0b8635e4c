package inbound

import (
	"github.com/shandysiswandi/portfolio/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/contato/", end.Submit)
	r.GET("/healthz", end.Health)
}
