// Package grouping splits a parsed statement into the groups that become OFX
// documents.
package grouping

import (
	"sort"

	"ing2ofx/internal/dateutils"
	"ing2ofx/internal/models"
)

// Split partitions a statement into renderable groups. Without splitting the
// whole statement forms a single group, even when it holds no transactions.
// With byMonth set, transactions are partitioned by the calendar month of
// their posting date; groups come out in chronological order and transactions
// keep their file order within each group.
func Split(statement *models.Statement, byMonth bool) []models.Group {
	if !byMonth {
		return []models.Group{{
			AccountID:    statement.AccountID,
			Transactions: statement.Transactions,
		}}
	}

	buckets := make(map[string][]models.Transaction)
	for _, tx := range statement.Transactions {
		key := dateutils.ToMonthKey(tx.Date)
		buckets[key] = append(buckets[key], tx)
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	// "YYYYMM" keys sort chronologically.
	sort.Strings(months)

	groups := make([]models.Group, 0, len(months))
	for _, month := range months {
		groups = append(groups, models.Group{
			Month:        month,
			AccountID:    statement.AccountID,
			Transactions: buckets[month],
		})
	}

	return groups
}
