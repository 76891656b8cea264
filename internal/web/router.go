package web

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"number": formatNumber,
	"inc":    func(i int) int { return i + 1 },
}

func parseTemplates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

// NewRouter serves the assessment form.
func NewRouter(h *Handler) *gin.Engine {
	engine := gin.New()
	engine.SetHTMLTemplate(parseTemplates())

	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.SizeLimit(middleware.DefaultSizeLimitConfig()),
	)

	h.RegisterRoutes(engine.Group(""))
	return engine
}
