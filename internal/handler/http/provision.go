package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/device-provision/internal/logger"
	"github.com/MKhiriev/device-provision/internal/utils"
	"github.com/MKhiriev/device-provision/models"
)

func (h *Handler) provisionApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	appName := chi.URLParam(r, "name")

	params, err := decodeNetworkParams(r.Body)
	if err != nil {
		log.Err(err).Msg("invalid network params payload")
		http.Error(w, "invalid network params payload", http.StatusBadRequest)
		return
	}

	cfg, err := h.services.ProvisionService.GetByApplication(ctx, appName, params)
	if err != nil {
		log.Err(err).Str("application", appName).Msg("error provisioning by application")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, cfg, http.StatusOK)
}

func (h *Handler) provisionDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	uuid := chi.URLParam(r, "uuid")

	params, err := decodeNetworkParams(r.Body)
	if err != nil {
		log.Err(err).Msg("invalid network params payload")
		http.Error(w, "invalid network params payload", http.StatusBadRequest)
		return
	}

	cfg, err := h.services.ProvisionService.GetByDevice(ctx, uuid, params)
	if err != nil {
		log.Err(err).Str("uuid", uuid).Msg("error provisioning by device")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, cfg, http.StatusOK)
}

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := h.services.HistoryService.List(ctx, limit)
	if err != nil {
		log.Err(err).Msg("error listing provisioning history")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

// decodeNetworkParams reads the optional NetworkParams body. An empty body
// means "ethernet, defaults".
func decodeNetworkParams(body io.Reader) (models.NetworkParams, error) {
	var params models.NetworkParams

	err := json.NewDecoder(body).Decode(&params)
	if err != nil && !errors.Is(err, io.EOF) {
		return models.NetworkParams{}, err
	}

	return params, nil
}
