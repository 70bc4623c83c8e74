package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/voldemort-x/Finance-Monitor/internal/core"
	"github.com/voldemort-x/Finance-Monitor/internal/monitor"
)

type pageData struct {
	Transactions transactionsView
	Summary      summaryView
}

// handleIndex renders the page shell with the transaction list and the
// performance summary fetched up front. The two fetches are independent; a
// failure in one renders an inline error in its region only.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	var data pageData
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		txs, err := s.txLister.ListTransactions(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "Transaction list error", "error", err)
			data.Transactions = transactionsError(err)
			return nil
		}
		data.Transactions = transactionsFromList(txs)
		return nil
	})
	g.Go(func() error {
		report, err := s.summaries.ReadSummary(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "Summary read error", "error", err)
			data.Summary = summaryError(err)
			return nil
		}
		data.Summary = summaryFromReport(report)
		return nil
	})
	_ = g.Wait()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleTransactions renders the transaction table body partial.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	view := transactionsView{}
	txs, err := s.txLister.ListTransactions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction list error", "error", err)
		view = transactionsError(err)
	} else {
		view = transactionsFromList(txs)
	}
	s.renderPartial(w, r, "transactions.html", view)
}

// handleSummary renders the performance summary partial.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	view := summaryView{}
	report, err := s.summaries.ReadSummary(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary read error", "error", err)
		view = summaryError(err)
	} else {
		view = summaryFromReport(report)
	}
	s.renderPartial(w, r, "summary.html", view)
}

// handleDetailedAnalysis renders the on-demand detailed report partial. The
// response is always a region swap, success or error, so the review button
// settles back to enabled either way.
func (s *Server) handleDetailedAnalysis(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	view := detailedView{}
	report, err := s.detailed.ReadDetailedReport(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Detailed report error", "error", err)
		view = detailedError(err)
	} else {
		view = detailedFromReport(report)
	}
	s.renderPartial(w, r, "detailed_report.html", view)
}

func (s *Server) renderPartial(w http.ResponseWriter, r *http.Request, name string, data any) {
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", name)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleAddTransaction validates the submitted form and forwards it to the
// backend. Invalid input is rejected before any backend request. On success
// the response triggers a re-fetch of the transaction list and the summary,
// but never the detailed report.
func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		BadRequestError("Invalid form data").Write(w)
		return
	}

	desc := sanitizeInput(r.Form.Get("description"))
	typeStr := strings.TrimSpace(r.Form.Get("type"))
	amountStr := strings.TrimSpace(r.Form.Get("amount"))
	dateStr := strings.TrimSpace(r.Form.Get("date"))

	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		UnprocessableEntityError("Amount must be a positive number").Write(w)
		return
	}
	date, err := core.ParseDate(dateStr)
	if err != nil {
		UnprocessableEntityError("A valid date is required").Write(w)
		return
	}

	tx := core.Transaction{
		Description: desc,
		Type:        core.TransactionType(typeStr),
		Amount:      core.Money{Cents: cents},
		Date:        date,
	}
	if err := tx.Validate(); err != nil {
		UnprocessableEntityError("Invalid transaction: " + err.Error()).Write(w)
		return
	}

	id, err := s.txWriter.AddTransaction(r.Context(), tx)
	if err != nil {
		slog.ErrorContext(r.Context(), "Add transaction error", "error", err,
			"description", tx.Description, "amount_cents", tx.Amount.Cents)
		status := http.StatusBadGateway
		message := "Could not reach the finance service"
		var apiErr *monitor.APIError
		if errors.As(err, &apiErr) {
			message = apiErr.Error()
			if apiErr.StatusCode >= 400 {
				status = apiErr.StatusCode
			}
		}
		ErrorResponse(status, message).Write(w)
		return
	}

	NewHTMXResponse().
		TriggerTransactionsRefresh().
		TriggerSummaryRefresh().
		TriggerFormReset().
		SuccessBody(fmt.Sprintf("Transaction #%d added: %s — %s", id, tx.Description, formatUSD(tx.SignedCents()))).
		Write(w)
}
