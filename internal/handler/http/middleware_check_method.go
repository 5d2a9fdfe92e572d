// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

var routableMethods = []string{
	http.MethodGet,
	http.MethodPut,
	http.MethodPost,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns the handler to register with
// [chi.Mux.MethodNotAllowed].
//
// It answers 405 with an Allow header listing the methods router serves for
// the requested path, and 404 when the path is served by no method at all.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)
		if len(allowed) == 0 {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

// allowedMethods lists, in routableMethods order, the methods of every
// endpoint router registers for path. Mount and Route stubs are not
// endpoints, so their catch-all methods are never counted.
func allowedMethods(router chi.Routes, path string) []string {
	served := make(map[string]bool, len(routableMethods))
	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if matchRoute(route, path) {
			served[method] = true
		}
		return nil
	})

	var allowed []string
	for _, method := range routableMethods {
		if served[method] {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// matchRoute reports whether path fits the flattened chi route pattern.
// A {param} segment matches one non-empty segment and a trailing * matches
// the rest of the path. Trailing slashes are ignored on both sides.
func matchRoute(route, path string) bool {
	routeSegs := splitPath(route)
	pathSegs := splitPath(path)

	for i, seg := range routeSegs {
		if seg == "*" && i == len(routeSegs)-1 {
			return true
		}
		if i >= len(pathSegs) {
			return false
		}
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if pathSegs[i] == "" {
				return false
			}
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return len(routeSegs) == len(pathSegs)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
