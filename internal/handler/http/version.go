package http

import (
	"net/http"

	"github.com/MKhiriev/greenwall/internal/utils"
	"github.com/MKhiriev/greenwall/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	info := h.services.AppInfoService

	utils.WriteJSON(w, models.NewVersionResponse(info.GetAppVersion(ctx), info.GetBuildInfo(ctx)), http.StatusOK)
}
