// Package memory is an in-process stand-in for the finance monitor service,
// used in development and tests. It mirrors the service's behavior: listing
// in date-descending order, assigning ids, and producing the rule-based
// performance narratives the service falls back to without its analysis
// engine.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/voldemort-x/Finance-Monitor/internal/core"
)

type entry struct {
	id int64
	tx core.Transaction
}

type Store struct {
	mu     sync.Mutex
	items  []entry
	nextID int64
}

func New() *Store {
	return &Store{nextID: 1}
}

// NewSeeded returns a store pre-filled with the sample book the real service
// seeds an empty database with.
func NewSeeded() *Store {
	s := New()
	seed := []core.Transaction{
		{Description: "Initial Investment", Type: core.Income, Amount: core.Money{Cents: 5000000}, Date: core.NewDate(2023, 1, 1)},
		{Description: "Office Rent", Type: core.Expense, Amount: core.Money{Cents: 200000}, Date: core.NewDate(2023, 1, 15)},
		{Description: "Consulting Fee (Client A)", Type: core.Income, Amount: core.Money{Cents: 1000000}, Date: core.NewDate(2023, 2, 10)},
		{Description: "Software Subscription", Type: core.Expense, Amount: core.Money{Cents: 15000}, Date: core.NewDate(2023, 2, 12)},
		{Description: "Salaries", Type: core.Expense, Amount: core.Money{Cents: 800000}, Date: core.NewDate(2023, 2, 28)},
		{Description: "Consulting Fee (Client B)", Type: core.Income, Amount: core.Money{Cents: 1500000}, Date: core.NewDate(2023, 3, 5)},
	}
	for _, tx := range seed {
		s.items = append(s.items, entry{id: s.nextID, tx: tx})
		s.nextID++
	}
	return s
}

// ListTransactions returns all transactions, newest date first, later
// insertions first within a date.
func (s *Store) ListTransactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := append([]entry(nil), s.items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].tx.Date, sorted[j].tx.Date
		if !di.Equal(dj.Time) {
			return di.After(dj.Time)
		}
		return sorted[i].id > sorted[j].id
	})

	out := make([]core.Transaction, len(sorted))
	for i, e := range sorted {
		out[i] = e.tx
	}
	return out, nil
}

// AddTransaction stores the transaction and returns its id.
func (s *Store) AddTransaction(_ context.Context, tx core.Transaction) (int64, error) {
	if err := tx.Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.items = append(s.items, entry{id: id, tx: tx})
	return id, nil
}

// ReadSummary computes totals and a short narrative.
func (s *Store) ReadSummary(_ context.Context) (core.SummaryReport, error) {
	income, expense := s.totals()
	net := income - expense
	return core.SummaryReport{
		TotalIncome:        core.Money{Cents: income},
		TotalExpense:       core.Money{Cents: expense},
		NetProfit:          core.Money{Cents: net},
		PerformanceSummary: summaryNarrative(net),
	}, nil
}

// ReadDetailedReport produces the long-form suggestions text.
func (s *Store) ReadDetailedReport(_ context.Context) (core.DetailedReport, error) {
	income, expense := s.totals()
	return core.DetailedReport{Text: detailedNarrative(income, expense)}, nil
}

func (s *Store) totals() (income, expense int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.items {
		if e.tx.Type == core.Income {
			income += e.tx.Amount.Cents
		} else {
			expense += e.tx.Amount.Cents
		}
	}
	return income, expense
}

func summaryNarrative(netCents int64) string {
	switch {
	case netCents > 500000:
		return "Excellent performance! The company shows strong profitability."
	case netCents > 0:
		return "Good performance. The company is profitable."
	case netCents == 0:
		return "The company is currently breaking even."
	default:
		return "Performance is low. The company is currently experiencing a net loss. Review expenses."
	}
}

func detailedNarrative(incomeCents, expenseCents int64) string {
	net := incomeCents - expenseCents
	msg := "Here are some basic suggestions based on the numbers:\n\n"
	switch {
	case net < 0:
		msg += "- Urgent: Analyze all expense categories to find areas for reduction.\n" +
			"- Identify potential bottlenecks in income generation.\n" +
			"- Review pricing models or seek higher-value clients.\n"
	case net > 0:
		msg += "- Continue monitoring income and expenses.\n" +
			"- Investigate opportunities to increase income (e.g., new services, marketing).\n" +
			"- Explore ways to optimize operational costs without impacting service quality.\n"
	default:
		msg += "- Analyze whether the current income streams are sustainable.\n" +
			"- Look for small cost savings to push into profitability.\n" +
			"- Develop strategies to increase client base or service volume.\n"
	}
	return msg
}
