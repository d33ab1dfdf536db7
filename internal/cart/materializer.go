// Package cart turns a client-held cart into a priced, validated order
// request. The cart itself lives on the client and dies at submission;
// nothing here touches storage.
package cart

import (
	"fmt"
	"strconv"
	"strings"
)

// MergeLines collapses duplicate (item, option) lines into one line with the
// quantities summed, preserving first-seen order. Two lines only merge when
// both the item and the selected option match.
func MergeLines(lines []Line) []Line {
	merged := make([]Line, 0, len(lines))
	index := make(map[string]int, len(lines))

	for _, l := range lines {
		k := l.key()
		if i, ok := index[k]; ok {
			merged[i].Quantity += l.Quantity
			merged[i].TotalPrice = merged[i].UnitPrice * int64(merged[i].Quantity)
			continue
		}
		index[k] = len(merged)
		merged = append(merged, l)
	}
	return merged
}

// Materialize validates a submission and produces an OrderRequest for the
// order store. availableSlots must be the slot list computed at submission
// time, never one cached from an earlier render. Pure: calling it twice
// with the same inputs gives the same outcome.
func Materialize(sub Submission, availableSlots []string) (*OrderRequest, error) {
	name := strings.TrimSpace(sub.Customer.Name)
	phone := strings.TrimSpace(sub.Customer.Phone)

	if name == "" {
		return nil, invalid("customer_name", "name is required")
	}
	if phone == "" {
		return nil, invalid("customer_phone", "phone is required")
	}

	if sub.CollectionTime == "" {
		return nil, invalid("collection_time", "collection time is required")
	}
	if !contains(availableSlots, sub.CollectionTime) {
		return nil, invalid("collection_time",
			fmt.Sprintf("%q is not an available collection time", sub.CollectionTime))
	}

	lines := MergeLines(sub.Lines)
	if len(lines) == 0 {
		return nil, invalid("lines", "cart is empty")
	}

	var total int64
	for i := range lines {
		l := &lines[i]
		l.Name = strings.TrimSpace(l.Name)
		l.Option = strings.TrimSpace(l.Option)

		if l.Name == "" {
			return nil, invalid("lines", fmt.Sprintf("line %d has no item name", i))
		}
		if l.UnitPrice <= 0 {
			return nil, invalid("lines", fmt.Sprintf("line %d (%s) has a non-positive price", i, l.Name))
		}
		if l.Quantity < 1 {
			return nil, invalid("lines", fmt.Sprintf("line %d (%s) has quantity below 1", i, l.Name))
		}

		l.TotalPrice = l.UnitPrice * int64(l.Quantity)
		total += l.TotalPrice
	}

	if total <= 0 {
		return nil, invalid("total_amount", "order total must be greater than zero")
	}
	if total != sub.ClaimedTotal {
		return nil, invalid("total_amount",
			fmt.Sprintf("submitted total %d does not match computed total %d", sub.ClaimedTotal, total))
	}

	return &OrderRequest{
		CustomerName:        name,
		CustomerPhone:       phone,
		CollectionDate:      sub.CollectionDate,
		CollectionTime:      sub.CollectionTime,
		SpecialInstructions: strings.TrimSpace(sub.Customer.Instructions),
		TotalAmount:         total,
		Lines:               lines,
	}, nil
}

func contains(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
