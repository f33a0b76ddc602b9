// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-hub/internal/utils"
)

const rootGreeting = "Hello World!"

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, rootGreeting, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteText(w, serverVersion, http.StatusOK)
}
