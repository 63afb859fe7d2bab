package httpkit

import (
	"net/http"
	"path"
)

// APIV1 is where the stockboard modules are served
const APIV1 = "/api/v1"

// MountAPI opens /api/{version} with mw applied to that scope only and lets mount fill it
//
//	httpkit.MountAPI(r, "v1", stack, func(api httpkit.Router) {
//		uploads.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(path.Join("/api", version), func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// MountAPIV1 mounts under APIV1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, path.Base(APIV1), mw, mount)
}
