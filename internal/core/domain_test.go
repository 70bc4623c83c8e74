package core

import (
	"errors"
	"strings"
	"testing"
)

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		Description: "Consulting Fee",
		Type:        Income,
		Amount:      Money{Cents: 10000},
		Date:        NewDate(2023, 2, 10),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Transaction)
		want   error
	}{
		{"empty description", func(tx *Transaction) { tx.Description = "  " }, ErrEmptyDescription},
		{"long description", func(tx *Transaction) { tx.Description = strings.Repeat("x", 201) }, nil},
		{"bad type", func(tx *Transaction) { tx.Type = "transfer" }, ErrInvalidType},
		{"empty type", func(tx *Transaction) { tx.Type = "" }, ErrInvalidType},
		{"zero amount", func(tx *Transaction) { tx.Amount = Money{} }, ErrInvalidAmount},
		{"negative amount", func(tx *Transaction) { tx.Amount = Money{Cents: -500} }, ErrInvalidAmount},
		{"zero date", func(tx *Transaction) { tx.Date = Date{} }, ErrEmptyDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx := valid
			tc.mutate(&tx)
			err := tx.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2023-01-15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.String() != "2023-01-15" {
		t.Fatalf("round trip got %q", d.String())
	}
	for _, in := range []string{"", "   ", "15/01/2023", "2023-13-01"} {
		if _, err := ParseDate(in); err == nil {
			t.Fatalf("%q expected error", in)
		}
	}
}

func TestSignedCents(t *testing.T) {
	exp := Transaction{Type: Expense, Amount: Money{Cents: 10050}}
	if got := exp.SignedCents(); got != -10050 {
		t.Fatalf("expense signed cents = %d, want -10050", got)
	}
	inc := Transaction{Type: Income, Amount: Money{Cents: 10050}}
	if got := inc.SignedCents(); got != 10050 {
		t.Fatalf("income signed cents = %d, want 10050", got)
	}
}
