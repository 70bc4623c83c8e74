package http

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/voldemort-x/Finance-Monitor/internal/core"
)

// View models passed to the templates. Each region renders either its data
// or an inline Err message, never both.

type transactionRow struct {
	Date        string
	Description string
	Type        string
	Amount      string
}

type transactionsView struct {
	Rows []transactionRow
	Err  string
}

type summaryView struct {
	TotalIncome  string
	TotalExpense string
	NetProfit    string
	NetClass     string
	Narrative    string
	Err          string
}

type detailedView struct {
	Body template.HTML
	Err  string
}

func transactionsFromList(txs []core.Transaction) transactionsView {
	view := transactionsView{Rows: make([]transactionRow, 0, len(txs))}
	for _, tx := range txs {
		view.Rows = append(view.Rows, transactionRow{
			Date:        tx.Date.String(),
			Description: tx.Description,
			Type:        string(tx.Type),
			Amount:      formatUSD(tx.SignedCents()),
		})
	}
	return view
}

func transactionsError(err error) transactionsView {
	return transactionsView{Err: fmt.Sprintf("Error loading transactions: %v", err)}
}

func summaryFromReport(report core.SummaryReport) summaryView {
	netClass := ""
	switch {
	case report.NetProfit.Cents > 0:
		netClass = "positive"
	case report.NetProfit.Cents < 0:
		netClass = "negative"
	}
	return summaryView{
		TotalIncome:  formatUSD(report.TotalIncome.Cents),
		TotalExpense: formatUSD(report.TotalExpense.Cents),
		NetProfit:    formatUSD(report.NetProfit.Cents),
		NetClass:     netClass,
		Narrative:    report.PerformanceSummary,
	}
}

func summaryError(err error) summaryView {
	return summaryView{Err: fmt.Sprintf("Error loading performance summary: %v", err)}
}

// detailedFromReport converts the report text to markup, turning newlines
// into line breaks. The text is inserted unescaped: the backend is trusted
// content, matching the page's original behavior.
func detailedFromReport(report core.DetailedReport) detailedView {
	return detailedView{Body: template.HTML(strings.ReplaceAll(report.Text, "\n", "<br>"))}
}

func detailedError(err error) detailedView {
	return detailedView{Err: fmt.Sprintf("Error generating detailed report: %v", err)}
}
