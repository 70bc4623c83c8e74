package monitor

import "github.com/voldemort-x/Finance-Monitor/internal/core"

// Wire records for the finance monitor API. Amounts travel as plain decimal
// numbers; dates as ISO YYYY-MM-DD strings.

type transactionRecord struct {
	ID          int64   `json:"id,omitempty"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

type summaryRecord struct {
	TotalIncome        float64 `json:"total_income"`
	TotalExpense       float64 `json:"total_expense"`
	NetProfit          float64 `json:"net_profit"`
	PerformanceSummary string  `json:"performance_summary"`
}

type detailedRecord struct {
	DetailedReport string `json:"detailed_report"`
}

// addResult is the add_transaction response body. The backend fills either
// message+id (2xx) or error (anything else).
type addResult struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Error   string `json:"error"`
}

func (r transactionRecord) toDomain() core.Transaction {
	date, err := core.ParseDate(r.Date)
	if err != nil {
		// A malformed server date must not drop the row; it renders blank.
		date = core.Date{}
	}
	return core.Transaction{
		Description: r.Description,
		Type:        core.TransactionType(r.Type),
		Amount:      core.FromDollars(r.Amount),
		Date:        date,
	}
}

func fromDomain(tx core.Transaction) transactionRecord {
	return transactionRecord{
		Description: tx.Description,
		Type:        string(tx.Type),
		Amount:      tx.Amount.Dollars(),
		Date:        tx.Date.String(),
	}
}

func (r summaryRecord) toDomain() core.SummaryReport {
	return core.SummaryReport{
		TotalIncome:        core.FromDollars(r.TotalIncome),
		TotalExpense:       core.FromDollars(r.TotalExpense),
		NetProfit:          core.FromDollars(r.NetProfit),
		PerformanceSummary: r.PerformanceSummary,
	}
}
