package routerhelper

import (
	"net/http"
	"path"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup registers routes on an httprouter.Router below a common prefix.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	return &RouteGroup{router: router, prefix: prefix}
}

func (g *RouteGroup) Group(prefix string) *RouteGroup {
	return NewRouteGroup(g.router, path.Join(g.prefix, prefix))
}

func (g *RouteGroup) GET(p string, h httprouter.Handle) {
	g.router.GET(path.Join(g.prefix, p), h)
}

func (g *RouteGroup) POST(p string, h httprouter.Handle) {
	g.router.POST(path.Join(g.prefix, p), h)
}

func (g *RouteGroup) Handler(method, p string, h http.Handler) {
	g.router.Handler(method, path.Join(g.prefix, p), h)
}
