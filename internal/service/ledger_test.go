package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerolunch/backend/internal/domain"
)

func TestBuildOrderLedger_SpendAndEarn(t *testing.T) {
	entries := buildOrderLedger(dec(t, "300"), dec(t, "200"), dec(t, "80"), 1001)
	require.Len(t, entries, 2)

	spent := entries[0]
	assert.Equal(t, domain.BonusSpent, spent.Type)
	assertDecEqual(t, "200", spent.Amount)
	assertDecEqual(t, "300", spent.BalanceBefore)
	assertDecEqual(t, "100", spent.BalanceAfter)

	earned := entries[1]
	assert.Equal(t, domain.BonusEarned, earned.Type)
	assertDecEqual(t, "80", earned.Amount)
	// The earn folds over the spend's result, not the original balance.
	assert.True(t, spent.BalanceAfter.Equal(earned.BalanceBefore))
	assertDecEqual(t, "180", earned.BalanceAfter)
}

func TestBuildOrderLedger_EarnOnly(t *testing.T) {
	entries := buildOrderLedger(dec(t, "50"), decimal.Zero, dec(t, "30"), 1002)
	require.Len(t, entries, 1)

	assert.Equal(t, domain.BonusEarned, entries[0].Type)
	assertDecEqual(t, "50", entries[0].BalanceBefore)
	assertDecEqual(t, "80", entries[0].BalanceAfter)
}

func TestBuildOrderLedger_SpendOnly(t *testing.T) {
	entries := buildOrderLedger(dec(t, "100"), dec(t, "40"), decimal.Zero, 1003)
	require.Len(t, entries, 1)

	assert.Equal(t, domain.BonusSpent, entries[0].Type)
	assertDecEqual(t, "100", entries[0].BalanceBefore)
	assertDecEqual(t, "60", entries[0].BalanceAfter)
}

func TestBuildOrderLedger_NoBonusMovement(t *testing.T) {
	assert.Empty(t, buildOrderLedger(dec(t, "100"), decimal.Zero, decimal.Zero, 1004))
}

func TestBuildOrderLedger_BalanceConservation(t *testing.T) {
	cases := []struct{ before, used, earned string }{
		{"0", "0", "100"},
		{"500", "250", "25"},
		{"123.45", "61.72", "6.17"},
		{"800", "500", "50"},
	}

	for _, tc := range cases {
		entries := buildOrderLedger(dec(t, tc.before), dec(t, tc.used), dec(t, tc.earned), 42)

		// Net ledger movement equals earned - used.
		want := dec(t, tc.earned).Sub(dec(t, tc.used))
		assert.True(t, ledgerDelta(entries).Equal(want),
			"before=%s used=%s earned=%s", tc.before, tc.used, tc.earned)

		// Final snapshot equals before - used + earned.
		if len(entries) > 0 {
			final := entries[len(entries)-1].BalanceAfter
			assert.True(t, final.Equal(dec(t, tc.before).Add(want)))
		}

		// Each entry's snapshots are individually consistent.
		for _, e := range entries {
			switch e.Type {
			case domain.BonusSpent:
				assert.True(t, e.BalanceAfter.Equal(e.BalanceBefore.Sub(e.Amount)))
			case domain.BonusEarned:
				assert.True(t, e.BalanceAfter.Equal(e.BalanceBefore.Add(e.Amount)))
			}
		}
	}
}

func TestBuildCancellationLedger_RefundsAndRevokes(t *testing.T) {
	// Order used 200 and earned 80; balance now 130.
	entries := buildCancellationLedger(dec(t, "130"), dec(t, "200"), dec(t, "80"), 1001)
	require.Len(t, entries, 2)

	refund := entries[0]
	assert.Equal(t, domain.BonusEarned, refund.Type)
	assertDecEqual(t, "200", refund.Amount)
	assertDecEqual(t, "330", refund.BalanceAfter)

	revoke := entries[1]
	assert.Equal(t, domain.BonusSpent, revoke.Type)
	assertDecEqual(t, "80", revoke.Amount)
	assertDecEqual(t, "250", revoke.BalanceAfter)
}

func TestBuildCancellationLedger_RevokeLimitedByBalance(t *testing.T) {
	// Earned bonuses were already spent elsewhere: revoke what remains,
	// never below zero.
	entries := buildCancellationLedger(dec(t, "10"), decimal.Zero, dec(t, "80"), 1005)
	require.Len(t, entries, 1)

	assert.Equal(t, domain.BonusSpent, entries[0].Type)
	assertDecEqual(t, "10", entries[0].Amount)
	assertDecEqual(t, "0", entries[0].BalanceAfter)
	assert.False(t, entries[0].BalanceAfter.IsNegative())
}
