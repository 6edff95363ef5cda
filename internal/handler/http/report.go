package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/ledger"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/service/report"
)

type ReportHandler interface {
	HourLedger(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// HourLedger implements ReportHandler.
func (h *reportHandlerImpl) HourLedger(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var kind *ledger.Kind
	if v := q.Get("kind"); v != "" {
		k := ledger.Kind(v)
		kind = &k
	}

	result, err := h.reportService.HourLedger(
		r.Context(),
		chi.URLParam(r, "id"),
		q.Get("from"),
		q.Get("to"),
		kind,
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
