package apis

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	//go:embed web/index.html
	indexHTML []byte

	//go:embed web/main.js
	mainJS []byte
)

// HomeAPI serves the single page the front end needs.
type HomeAPI struct{}

func NewHomeAPI() *HomeAPI {
	return &HomeAPI{}
}

func (a *HomeAPI) Setup(g *echo.Group) {
	g.GET("/", a.homepage)
	g.GET("/static/js/main.js", a.script)
}

func (a *HomeAPI) homepage(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, indexHTML)
}

func (a *HomeAPI) script(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/javascript; charset=utf-8", mainJS)
}
