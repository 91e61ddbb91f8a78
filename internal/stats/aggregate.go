package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/bokjion/rental-care-api/internal/catalog"
	"github.com/bokjion/rental-care-api/internal/model"
	sharedValidator "github.com/bokjion/rental-care-api/internal/shared/validator"
)

// UnknownClientName stands in for consultations saved without a name.
const UnknownClientName = "이름없음"

// ProductRow is one aggregated line of the 품목별 상담 통계 view, keyed by
// (category, product). Recomputed from scratch on every query.
type ProductRow struct {
	Category     string         `json:"category"`
	Product      string         `json:"product"`
	Total        int            `json:"total"`
	CopayBuckets map[string]int `json:"copayBuckets"`
	ClientNames  []string       `json:"clientNames"`
}

type row struct {
	category string
	product  string
	total    int
	buckets  map[string]int
	names    map[string]struct{}
}

// Aggregate reduces the consultation set over the inclusive date range
// [start, end] into per-product rows. Pure and single-pass: shuffling the
// input does not change totals or bucket sums, and re-running over the
// same input yields the same output. keyword, when non-empty, post-filters
// rows by substring match on category or product name.
func Aggregate(consultations []model.Consultation, start, end time.Time, keyword string) []ProductRow {
	rows := map[string]*row{}
	var order []string

	for _, consultation := range consultations {
		date, err := time.Parse(sharedValidator.DateLayout, consultation.Date)
		if err != nil {
			// 날짜가 없거나 깨진 기록은 범위 밖으로 취급한다
			continue
		}
		if date.Before(start) || date.After(end) {
			continue
		}

		clientName := consultation.Name
		if clientName == "" {
			clientName = UnknownClientName
		}

		for _, line := range consultation.Products {
			category := catalog.CategoryOf(line.Name)
			copay := line.Copay
			if copay == "" {
				copay = catalog.OtherCategory
			}

			key := category + "|||" + line.Name
			r, ok := rows[key]
			if !ok {
				r = &row{
					category: category,
					product:  line.Name,
					buckets:  newBuckets(),
					names:    map[string]struct{}{},
				}
				rows[key] = r
				order = append(order, key)
			}

			count := parseQuantity(line.Quantity)
			r.total += count
			r.buckets[copay] += count
			r.names[clientName] = struct{}{}
		}
	}

	result := make([]ProductRow, 0, len(order))
	for _, key := range order {
		r := rows[key]
		if keyword != "" &&
			!strings.Contains(r.category, keyword) &&
			!strings.Contains(r.product, keyword) {
			continue
		}

		names := make([]string, 0, len(r.names))
		for name := range r.names {
			names = append(names, name)
		}
		sort.Strings(names)

		result = append(result, ProductRow{
			Category:     r.category,
			Product:      r.product,
			Total:        r.total,
			CopayBuckets: r.buckets,
			ClientNames:  names,
		})
	}
	return result
}

// newBuckets pre-seeds the four known copay rates plus 기타, so every row
// reports all five columns even when they stayed at zero.
func newBuckets() map[string]int {
	buckets := map[string]int{catalog.OtherCategory: 0}
	for _, rate := range catalog.CopayRates {
		buckets[rate] = 0
	}
	return buckets
}

// parseQuantity reads a quantity field the way the consultation form
// stored it: free text. A leading integer counts; anything missing or
// unparseable counts as one unit, never zero.
func parseQuantity(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 1
	}

	sign := 1
	i := 0
	if value[0] == '+' || value[0] == '-' {
		if value[0] == '-' {
			sign = -1
		}
		i = 1
	}

	n := 0
	digits := 0
	for ; i < len(value) && value[i] >= '0' && value[i] <= '9'; i++ {
		n = n*10 + int(value[i]-'0')
		digits++
	}
	if digits == 0 {
		return 1
	}
	return sign * n
}
