// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/avatar-dashboard/internal/utils"
)

var errRouteNotFound = errors.New("route not found")

// notFound answers with 404 in the result envelope. It is registered both as
// the NotFound and the MethodNotAllowed handler of the router, so a known
// path requested with an unsupported method is indistinguishable from an
// unknown path.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteResult(w, nil, errRouteNotFound, "", http.StatusNotFound)
}
