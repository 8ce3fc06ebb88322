package routerhelper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestRouteGroupPrefixesPaths(t *testing.T) {
	router := httprouter.New()
	group := NewRouteGroup(router, "/api")
	nested := group.Group("/navigations")

	hits := make(map[string]int)
	handle := func(name string) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
			hits[name]++
			w.WriteHeader(http.StatusOK)
		}
	}

	group.GET("/ping", handle("ping"))
	nested.GET("/findRoute", handle("findRoute"))
	nested.POST("/echo", handle("echo"))

	testCases := []struct {
		method   string
		path     string
		wantCode int
		wantHit  string
	}{
		{http.MethodGet, "/api/ping", http.StatusOK, "ping"},
		{http.MethodGet, "/api/navigations/findRoute", http.StatusOK, "findRoute"},
		{http.MethodPost, "/api/navigations/echo", http.StatusOK, "echo"},
		{http.MethodGet, "/navigations/findRoute", http.StatusNotFound, ""},
		{http.MethodGet, "/api/findRoute", http.StatusNotFound, ""},
	}

	for _, tc := range testCases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != tc.wantCode {
			t.Fatalf("FAIL: %s %s: Expected status %d, got: %d",
				tc.method, tc.path, tc.wantCode, rr.Code)
		}
		if tc.wantHit != "" && hits[tc.wantHit] == 0 {
			t.Fatalf("FAIL: %s %s: Expected handler %q to run", tc.method, tc.path, tc.wantHit)
		}
	}
}
