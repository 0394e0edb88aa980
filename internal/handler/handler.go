// Package handler exposes the calculation engine over fasthttp.
package handler

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"golang.org/x/time/rate"

	"cvdrisk-engine/internal/chart"
	"cvdrisk-engine/internal/engine"
	"cvdrisk-engine/internal/metrics"
	"cvdrisk-engine/internal/model"
	"cvdrisk-engine/internal/report"
)

type Handler struct {
	engine      *engine.Engine
	log         *logrus.Logger
	limiter     *rate.Limiter
	promHandler fasthttp.RequestHandler
}

func New(eng *engine.Engine, log *logrus.Logger, rps float64) *Handler {
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return &Handler{
		engine:      eng,
		log:         log,
		limiter:     rate.NewLimiter(rate.Limit(rps), burst),
		promHandler: fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
}

// Handle is the root fasthttp request handler.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	method := string(ctx.Method())
	path := string(ctx.Path())

	// Unmatched paths are collapsed to one metric label; recording arbitrary
	// request paths would grow label cardinality without bound.
	metricsPath := path

	switch path {
	case "/healthz":
		h.handleHealth(ctx)
	case "/metrics":
		h.promHandler(ctx)
	case "/api/v1/catalog":
		h.limited(ctx, h.handleCatalog)
	case "/api/v1/calculate":
		h.limited(ctx, h.handleCalculate)
	case "/api/v1/report":
		h.limited(ctx, h.handleReport)
	case "/api/v1/chart":
		h.limited(ctx, h.handleChart)
	default:
		metricsPath = "unmatched"
		h.writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	duration := time.Since(start)
	status := ctx.Response.StatusCode()
	metrics.RecordHTTPRequest(method, metricsPath, status, duration)
	h.log.WithFields(logrus.Fields{
		"method":      method,
		"path":        path,
		"status":      status,
		"duration_ms": duration.Milliseconds(),
	}).Info("request handled")
}

func (h *Handler) limited(ctx *fasthttp.RequestCtx, next func(*fasthttp.RequestCtx)) {
	if !h.limiter.Allow() {
		h.writeError(ctx, fasthttp.StatusTooManyRequests, "Rate limit exceeded")
		return
	}
	next(ctx)
}

func (h *Handler) handleHealth(ctx *fasthttp.RequestCtx) {
	h.writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleCatalog(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		h.writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, h.engine.Catalog())
}

func (h *Handler) handleCalculate(ctx *fasthttp.RequestCtx) {
	req, ok := h.decodeRequest(ctx)
	if !ok {
		return
	}

	resp := h.engine.Process(req)
	metrics.RecordCalculation(string(req.Horizon), resp.CalculationMetadata.CalculationOutcome)
	if res := resp.CalculationResult.Result; res != nil {
		metrics.ObserveRiskReduction(res.AbsoluteRRPp)
	}

	h.log.WithFields(logrus.Fields{
		"calculation_id": resp.CalculationMetadata.CalculationID,
		"horizon":        req.Horizon,
		"outcome":        resp.CalculationMetadata.CalculationOutcome,
	}).Info("calculation processed")

	h.writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) handleReport(ctx *fasthttp.RequestCtx) {
	req, ok := h.decodeRequest(ctx)
	if !ok {
		return
	}

	resp := h.engine.Process(req)
	metrics.RecordCalculation(string(req.Horizon), resp.CalculationMetadata.CalculationOutcome)
	res := resp.CalculationResult.Result
	if res == nil {
		h.writeJSON(ctx, fasthttp.StatusUnprocessableEntity, resp)
		return
	}

	body, err := report.CSV(req, res)
	if err != nil {
		h.writeError(ctx, fasthttp.StatusInternalServerError, "Report generation failed: "+err.Error())
		return
	}

	ctx.SetContentType("text/csv")
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="`+report.Filename+`"`)
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(body)
}

func (h *Handler) handleChart(ctx *fasthttp.RequestCtx) {
	req, ok := h.decodeRequest(ctx)
	if !ok {
		return
	}

	resp := h.engine.Process(req)
	metrics.RecordCalculation(string(req.Horizon), resp.CalculationMetadata.CalculationOutcome)
	res := resp.CalculationResult.Result
	if res == nil {
		h.writeJSON(ctx, fasthttp.StatusUnprocessableEntity, resp)
		return
	}

	h.writeJSON(ctx, fasthttp.StatusOK, chart.FromResult(res, req.Horizon))
}

func (h *Handler) decodeRequest(ctx *fasthttp.RequestCtx) (*model.CalculationRequest, bool) {
	if !ctx.IsPost() {
		h.writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return nil, false
	}
	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	return &req, true
}

func (h *Handler) writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		h.writeError(ctx, fasthttp.StatusInternalServerError, "Response encoding failed")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
