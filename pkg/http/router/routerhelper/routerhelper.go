package routerhelper

import (
	"github.com/julienschmidt/httprouter"
)

// RouteGroup registers handlers on the shared router under a common path
// prefix.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	return &RouteGroup{
		router: router,
		prefix: prefix,
	}
}

// Group returns a nested group whose prefix is appended to this one.
func (g *RouteGroup) Group(prefix string) *RouteGroup {
	return &RouteGroup{
		router: g.router,
		prefix: g.prefix + prefix,
	}
}

func (g *RouteGroup) GET(path string, handle httprouter.Handle) {
	g.router.GET(g.prefix+path, handle)
}

func (g *RouteGroup) POST(path string, handle httprouter.Handle) {
	g.router.POST(g.prefix+path, handle)
}

func (g *RouteGroup) DELETE(path string, handle httprouter.Handle) {
	g.router.DELETE(g.prefix+path, handle)
}
