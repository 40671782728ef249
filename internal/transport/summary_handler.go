// Package transport exposes the read-only HTTP API over a persisted
// partition.
package transport

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultTopK = 10
	maxTopK     = 100
)

// SummaryHandler serves cluster summaries for one partition document loaded
// at startup. The partition is immutable, so no locking is needed.
type SummaryHandler struct {
	logger    *zap.Logger
	partition model.Partition
	summary   model.Summary
}

// NewSummaryHandler returns a SummaryHandler over the given partition.
func NewSummaryHandler(partition model.Partition, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{
		logger:    logger,
		partition: partition,
		summary:   model.Summarize(partition),
	}
}

// Register mounts the handler's routes on mux.
func (h *SummaryHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/summary", h.Summary)
	mux.HandleFunc("GET /v1/clusters/top", h.TopClusters)
}

type summaryResponse struct {
	Clusters int     `json:"clusters"`
	MinSize  int     `json:"min_size,omitempty"`
	MaxSize  int     `json:"max_size,omitempty"`
	MeanSize float64 `json:"mean_size,omitempty"`
}

// Summary reports cluster count and size statistics.
func (h *SummaryHandler) Summary(w http.ResponseWriter, _ *http.Request) {
	resp := summaryResponse{Clusters: h.summary.Clusters}
	if !h.summary.Empty() {
		resp.MinSize = h.summary.MinSize
		resp.MaxSize = h.summary.MaxSize
		resp.MeanSize = h.summary.MeanSize
	}
	h.respond(w, resp)
}

type clusterResponse struct {
	Rank    int      `json:"rank"`
	Root    uint64   `json:"root"`
	Size    int      `json:"size"`
	Members []uint64 `json:"members"`
}

// TopClusters returns the k largest clusters with their members.
func (h *SummaryHandler) TopClusters(w http.ResponseWriter, r *http.Request) {
	k := defaultTopK
	if raw := r.URL.Query().Get("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "k must be a positive integer", http.StatusBadRequest)
			return
		}
		k = parsed
	}
	if k > maxTopK {
		k = maxTopK
	}

	top := h.partition.TopBySize(k)
	resp := make([]clusterResponse, len(top))
	for i, cluster := range top {
		members := make([]uint64, len(cluster.Members))
		for j, m := range cluster.Members {
			members[j] = uint64(m)
		}
		resp[i] = clusterResponse{
			Rank:    i + 1,
			Root:    uint64(cluster.Root),
			Size:    len(cluster.Members),
			Members: members,
		}
	}
	h.respond(w, resp)
}

func (h *SummaryHandler) respond(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}
