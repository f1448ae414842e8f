package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/whoisbatch/domain_query_api/models"
	"github.com/whoisbatch/domain_query_api/pkg/query"
)

// DomainQueryHandlers groups the batch and streaming domain query endpoints.
type DomainQueryHandlers struct {
	ConfigPath string
	Client     query.Lookuper
	Logger     *zap.Logger
}

func NewDomainQueryHandlers(configPath string, client query.Lookuper, logger *zap.Logger) *DomainQueryHandlers {
	return &DomainQueryHandlers{
		ConfigPath: configPath,
		Client:     client,
		Logger:     logger,
	}
}

// mergeInputs folds the request fields into ordered text blobs: lines first,
// then text, whichever are non-empty.
func mergeInputs(req models.DomainQueryRequest) []string {
	switch {
	case req.Text != "" && len(req.Lines) > 0:
		inputs := make([]string, 0, len(req.Lines)+1)
		inputs = append(inputs, req.Lines...)
		return append(inputs, req.Text)
	case len(req.Lines) > 0:
		return req.Lines
	default:
		return []string{req.Text}
	}
}

// BatchQueryHandler godoc
// @Summary      Bulk domain availability check
// @Description  Expands each non-empty input line against the configured suffixes and performs one whois lookup per candidate domain, returning all results at once in candidate order.
// @Tags         Domain Query
// @Accept       json
// @Produce      json
// @Param        queryRequest body models.DomainQueryRequest true "Text and/or lines to expand into candidate domains"
// @Success      200 {object} models.DomainQueryResponse "Results in candidate order"
// @Failure      400 {object} models.ErrorResponse "Error: no usable input, bad suffix config, or a failed lookup"
// @Router       /domain-query/batch [post]
func (h *DomainQueryHandlers) BatchQueryHandler(c *gin.Context) {
	var req models.DomainQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	results, err := query.BatchQueryFromText(c.Request.Context(), h.Client, h.ConfigPath, mergeInputs(req)...)
	if err != nil {
		h.Logger.Warn("batch query failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(results) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": query.ErrNoCandidates.Error()})
		return
	}

	items := make([]models.DomainQueryItem, len(results))
	for i, result := range results {
		items[i] = models.DomainQueryItem{
			Domain:       result.Domain,
			DomainSuffix: result.DomainSuffix,
			IsRegistered: result.IsRegistered,
			QueryTime:    result.QueryTime,
		}
	}
	c.JSON(http.StatusOK, models.DomainQueryResponse{Items: items})
}

// StreamQueryHandler godoc
// @Summary      Bulk domain availability check with progress streaming
// @Description  Same input contract as the batch endpoint, but responds with a newline-delimited JSON event stream: one start event with the candidate total, one result event per completed lookup, and a terminal complete or error event. The connection closes after the terminal event.
// @Tags         Domain Query
// @Accept       json
// @Produce      json
// @Param        queryRequest body models.DomainQueryRequest true "Text and/or lines to expand into candidate domains"
// @Success      200 {string} string "application/x-ndjson event stream"
// @Failure      400 {object} models.ErrorResponse "Error: no usable input or bad suffix config"
// @Router       /domain-query/batch-stream [post]
func (h *DomainQueryHandlers) StreamQueryHandler(c *gin.Context) {
	var req models.DomainQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	writer := c.Writer
	encoder := json.NewEncoder(writer)
	headerSent := false
	writeEvent := func(event any) error {
		if !headerSent {
			writer.Header().Set("Content-Type", "application/x-ndjson; charset=utf-8")
			writer.Header().Set("Cache-Control", "no-cache")
			writer.WriteHeader(http.StatusOK)
			headerSent = true
		}
		// Encode appends the newline that frames one event per line.
		if err := encoder.Encode(event); err != nil {
			return err
		}
		writer.Flush()
		return nil
	}

	state, err := query.StreamQueryFromText(c.Request.Context(), h.Client, h.ConfigPath, writeEvent, mergeInputs(req)...)
	if err != nil {
		h.Logger.Warn("stream query rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if state == query.StreamAborted {
		h.Logger.Info("stream query aborted before completion")
	}
}
