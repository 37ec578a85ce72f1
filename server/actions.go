package server

import (
	"errors"
	"net/http"

	"github.com/czcorpus/cnc-gokit/unireq"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"github.com/revelaction/cohmetrix/classify"
	"github.com/revelaction/cohmetrix/errs"
	"github.com/revelaction/cohmetrix/index"
	"github.com/revelaction/cohmetrix/pipeline"
)

type analyzeRequest struct {
	Text  string   `json:"text"`
	Texts []string `json:"texts"`
}

type AnalyzeResult struct {
	Indices index.Map `json:"indices,omitempty"`
	Error   string    `json:"error,omitempty"`
}

type AnalyzeResponse struct {
	Results []AnalyzeResult `json:"results"`
}

type ClassifyResponse struct {
	Label string `json:"label"`
}

type IndexInfo struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type Actions struct {
	analyzer   *pipeline.Analyzer
	classifier *classify.Classifier
	workers    int
	batchSize  int
}

// NewActions returns the handlers. A nil classifier disables /classify.
func NewActions(a *pipeline.Analyzer, c *classify.Classifier, workers, batchSize int) *Actions {
	return &Actions{analyzer: a, classifier: c, workers: workers, batchSize: batchSize}
}

func (a *Actions) Analyze(ctx *gin.Context) {
	var req analyzeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		uniresp.RespondWithErrorJSON(ctx, uniresp.NewActionError("invalid request body"), http.StatusBadRequest)
		return
	}

	texts := req.Texts
	if req.Text != "" {
		texts = append([]string{req.Text}, texts...)
	}
	if len(texts) == 0 {
		uniresp.RespondWithErrorJSON(ctx, uniresp.NewActionError("no text to analyze"), http.StatusUnprocessableEntity)
		return
	}

	workers, ok := unireq.GetURLIntArgOrFail(ctx, "workers", a.workers)
	if !ok {
		return
	}

	results, err := a.analyzer.Analyze(ctx.Request.Context(), texts, workers, a.batchSize)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, status(err))
		return
	}

	resp := AnalyzeResponse{Results: make([]AnalyzeResult, len(results))}
	for i, r := range results {
		if r.Err != nil {
			resp.Results[i].Error = r.Err.Error()
			continue
		}
		resp.Results[i].Indices = r.Indices
	}
	uniresp.WriteJSONResponse(ctx.Writer, resp)
}

func (a *Actions) Classify(ctx *gin.Context) {
	if a.classifier == nil {
		uniresp.RespondWithErrorJSON(ctx, uniresp.NewActionError("no classifier configured"), http.StatusServiceUnavailable)
		return
	}

	var req analyzeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Text == "" {
		uniresp.RespondWithErrorJSON(ctx, uniresp.NewActionError("invalid request body"), http.StatusBadRequest)
		return
	}

	workers, ok := unireq.GetURLIntArgOrFail(ctx, "workers", a.workers)
	if !ok {
		return
	}

	label, err := a.analyzer.Classify(ctx.Request.Context(), req.Text, workers, a.classifier)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, status(err))
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, ClassifyResponse{Label: label})
}

func (a *Actions) Indices(ctx *gin.Context) {
	codes := index.Codes()
	resp := make([]IndexInfo, len(codes))
	for i, c := range codes {
		resp[i] = IndexInfo{Code: c, Description: index.Describe(c)}
	}
	uniresp.WriteJSONResponse(ctx.Writer, resp)
}

func status(err error) int {
	switch {
	case errors.Is(err, errs.ErrTextTooLong):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errs.ErrEmptyInput),
		errors.Is(err, errs.ErrUndefinedStatistic),
		errors.Is(err, errs.ErrInvalidConfiguration):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrMissingDependency):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
