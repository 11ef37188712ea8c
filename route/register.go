package route

import (
	"net/http"
	"time"

	"git.thinkinpower.net/cardcheck/bdata"
	"git.thinkinpower.net/cardcheck/data"
	"github.com/gin-gonic/gin"
)

// Register mounts the routes. dataDir is where new brand labels are written,
// empty disables writing.
func Register(r *gin.Engine, names bdata.BrandNameStore, dataDir string) {
	h := &handler{names: names, dataDir: dataDir}
	g := r.Group("/cardcheck")
	{
		g.GET("/index", func(context *gin.Context) {
			context.String(http.StatusOK, "Hello cardcheck, date: %s", time.Now().Format(data.DateTimePattern))
		})

		g.GET("/brands", h.brands)
		g.POST("/brands/:brand/display/:name", h.addBrandDisplay)
		g.GET("/validate/:number", h.validatePath)
		g.POST("/validate", h.validateBody)
	}
}
