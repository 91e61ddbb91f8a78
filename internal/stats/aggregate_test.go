package stats

import (
	"testing"
	"time"

	"github.com/bokjion/rental-care-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func consultationOf(name, date string, products ...model.ProductLine) model.Consultation {
	return model.Consultation{Name: name, Date: date, Products: products}
}

func TestAggregate_SingleConsultationInRange(t *testing.T) {
	// Given: 2025-06-10 상담 1건, BLS-700 2개 (15%)
	input := []model.Consultation{
		consultationOf("Kim", "2025-06-10",
			model.ProductLine{Name: "BLS-700", Quantity: "2", Copay: "15%"}),
	}

	// When: 6월 범위로 집계
	rows := Aggregate(input, mustDate(t, "2025-06-01"), mustDate(t, "2025-06-30"), "")

	// Then: 한 행, 카테고리 역조회 및 수량/버킷/명단 확인
	require.Len(t, rows, 1)
	assert.Equal(t, "미끄럼방지매트", rows[0].Category)
	assert.Equal(t, "BLS-700", rows[0].Product)
	assert.Equal(t, 2, rows[0].Total)
	assert.Equal(t, 2, rows[0].CopayBuckets["15%"])
	assert.Equal(t, 0, rows[0].CopayBuckets["9%"])
	assert.Equal(t, []string{"Kim"}, rows[0].ClientNames)
}

func TestAggregate_OutOfRangeYieldsNothing(t *testing.T) {
	input := []model.Consultation{
		consultationOf("Kim", "2025-06-10",
			model.ProductLine{Name: "BLS-700", Quantity: "2", Copay: "15%"}),
	}

	rows := Aggregate(input, mustDate(t, "2025-07-01"), mustDate(t, "2025-07-31"), "")

	assert.Empty(t, rows)
}

func TestAggregate_RangeIsInclusive(t *testing.T) {
	input := []model.Consultation{
		consultationOf("가", "2025-06-01", model.ProductLine{Name: "BLS-700", Quantity: "1", Copay: "15%"}),
		consultationOf("나", "2025-06-30", model.ProductLine{Name: "BLS-700", Quantity: "1", Copay: "15%"}),
	}

	rows := Aggregate(input, mustDate(t, "2025-06-01"), mustDate(t, "2025-06-30"), "")

	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Total)
}

func TestAggregate_MissingOrBrokenDateExcluded(t *testing.T) {
	input := []model.Consultation{
		consultationOf("가", "", model.ProductLine{Name: "BLS-700", Quantity: "1", Copay: "15%"}),
		consultationOf("나", "날짜아님", model.ProductLine{Name: "BLS-700", Quantity: "1", Copay: "15%"}),
	}

	rows := Aggregate(input, mustDate(t, "2025-01-01"), mustDate(t, "2025-12-31"), "")

	// 날짜가 깨진 기록은 오류가 아니라 범위 밖으로 취급
	assert.Empty(t, rows)
}

func TestAggregate_QuantityDefaults(t *testing.T) {
	testCases := []struct {
		name     string
		quantity string
		expected int
	}{
		{"빈 수량은 1", "", 1},
		{"공백 수량은 1", "   ", 1},
		{"숫자 아닌 수량은 1", "abc", 1},
		{"앞자리 숫자만 읽는다", "3개", 3},
		{"0은 0으로 집계", "0", 0},
		{"일반 숫자", "12", 12},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := []model.Consultation{
				consultationOf("Kim", "2025-06-10",
					model.ProductLine{Name: "BLS-700", Quantity: tc.quantity, Copay: "15%"}),
			}

			rows := Aggregate(input, mustDate(t, "2025-06-01"), mustDate(t, "2025-06-30"), "")

			require.Len(t, rows, 1)
			assert.Equal(t, tc.expected, rows[0].Total)
			assert.Equal(t, tc.expected, rows[0].CopayBuckets["15%"])
		})
	}
}

func TestAggregate_EmptyProductsContributesNothing(t *testing.T) {
	input := []model.Consultation{
		consultationOf("Kim", "2025-06-10"),
	}

	rows := Aggregate(input, mustDate(t, "2025-06-01"), mustDate(t, "2025-06-30"), "")

	assert.Empty(t, rows)
}

func TestAggregate_BlankProductNameFallsIntoOther(t *testing.T) {
	input := []model.Consultation{
		consultationOf("Kim", "2025-06-10",
			model.ProductLine{Name: "", Quantity: "1", Copay: "15%"}),
	}

	rows := Aggregate(input, mustDate(t, "2025-06-01"), mustDate(t, "2025-06-30"), "")

	require.Len(t, rows, 1)
	assert.Equal(t, "기타", rows[0].Category)
	assert.Equal(t, "", rows[0].Product)
}

func TestAggregate_MissingCopayBucketsUnderOther(t *testing.T) {
	input := []model.Consultation{
		consultationOf("Kim", "2025-06-10",
			model.ProductLine{Name: "BLS-700", Quantity: "2", Copay: ""}),
	}

	rows := Aggregate(input, mustDate(t, "2025-06-01"), mustDate(t, "2025-06-30"), "")

	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].CopayBuckets["기타"])
}

func TestAggregate_UnknownCopayCreatesBucket(t *testing.T) {
	input := []model.Consultation{
		consultationOf("Kim", "2025-06-10",
			model.ProductLine{Name: "BLS-700", Quantity: "2", Copay: "감면"}),
	}

	rows := Aggregate(input, mustDate(t, "2025-06-01"), mustDate(t, "2025-06-30"), "")

	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].CopayBuckets["감면"])
	assert.Equal(t, 2, rows[0].Total)
}

func TestAggregate_ClientNamesAreASet(t *testing.T) {
	// Given: 같은 수급자의 상담 3건, 같은 제품
	input := []model.Consultation{
		consultationOf("Kim", "2025-06-10", model.ProductLine{Name: "BLS-700", Quantity: "1", Copay: "15%"}),
		consultationOf("Kim", "2025-06-11", model.ProductLine{Name: "BLS-700", Quantity: "1", Copay: "15%"}),
		consultationOf("Kim", "2025-06-12", model.ProductLine{Name: "BLS-700", Quantity: "1", Copay: "15%"}),
	}

	rows := Aggregate(input, mustDate(t, "2025-06-01"), mustDate(t, "2025-06-30"), "")

	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Total)
	assert.Equal(t, []string{"Kim"}, rows[0].ClientNames)
}

func TestAggregate_BlankClientNameUsesPlaceholder(t *testing.T) {
	input := []model.Consultation{
		consultationOf("", "2025-06-10", model.ProductLine{Name: "BLS-700", Quantity: "1", Copay: "15%"}),
	}

	rows := Aggregate(input, mustDate(t, "2025-06-01"), mustDate(t, "2025-06-30"), "")

	require.Len(t, rows, 1)
	assert.Equal(t, []string{UnknownClientName}, rows[0].ClientNames)
}

func TestAggregate_StableUnderReordering(t *testing.T) {
	base := []model.Consultation{
		consultationOf("가", "2025-06-10", model.ProductLine{Name: "BLS-700", Quantity: "2", Copay: "15%"}),
		consultationOf("나", "2025-06-11", model.ProductLine{Name: "WS8830", Quantity: "1", Copay: "9%"}),
		consultationOf("다", "2025-06-12",
			model.ProductLine{Name: "BLS-700", Quantity: "3", Copay: "6%"},
			model.ProductLine{Name: "WS8830", Quantity: "", Copay: "9%"}),
	}
	shuffled := []model.Consultation{base[2], base[0], base[1]}

	start, end := mustDate(t, "2025-06-01"), mustDate(t, "2025-06-30")
	first := Aggregate(base, start, end, "")
	second := Aggregate(shuffled, start, end, "")

	// 행 순서(최초 등장 순)는 달라질 수 있으므로 키로 비교
	byKey := func(rows []ProductRow) map[string]ProductRow {
		m := map[string]ProductRow{}
		for _, r := range rows {
			m[r.Category+"|"+r.Product] = r
		}
		return m
	}
	assert.Equal(t, byKey(first), byKey(second))

	bls := byKey(first)["미끄럼방지매트|BLS-700"]
	assert.Equal(t, 5, bls.Total)
	assert.Equal(t, 2, bls.CopayBuckets["15%"])
	assert.Equal(t, 3, bls.CopayBuckets["6%"])

	ws := byKey(first)["전동침대|WS8830"]
	assert.Equal(t, 2, ws.Total) // 빈 수량 1건은 1로 집계
	assert.Equal(t, 2, ws.CopayBuckets["9%"])
}

func TestAggregate_KeywordPostFilter(t *testing.T) {
	input := []model.Consultation{
		consultationOf("가", "2025-06-10", model.ProductLine{Name: "BLS-700", Quantity: "1", Copay: "15%"}),
		consultationOf("나", "2025-06-11", model.ProductLine{Name: "WS8830", Quantity: "1", Copay: "9%"}),
	}

	start, end := mustDate(t, "2025-06-01"), mustDate(t, "2025-06-30")

	byProduct := Aggregate(input, start, end, "BLS")
	require.Len(t, byProduct, 1)
	assert.Equal(t, "BLS-700", byProduct[0].Product)

	byCategory := Aggregate(input, start, end, "전동침대")
	require.Len(t, byCategory, 1)
	assert.Equal(t, "WS8830", byCategory[0].Product)
}

func TestAggregate_Idempotent(t *testing.T) {
	input := []model.Consultation{
		consultationOf("가", "2025-06-10", model.ProductLine{Name: "BLS-700", Quantity: "2", Copay: "15%"}),
	}
	start, end := mustDate(t, "2025-06-01"), mustDate(t, "2025-06-30")

	first := Aggregate(input, start, end, "")
	second := Aggregate(input, start, end, "")

	assert.Equal(t, first, second)
}

func TestParseRange_BothRequired(t *testing.T) {
	_, _, err := ParseRange("", "2025-06-30")
	assert.Error(t, err)

	_, _, err = ParseRange("2025-06-01", "")
	assert.Error(t, err)

	start, end, err := ParseRange("2025-06-01", "2025-06-30")
	require.NoError(t, err)
	assert.True(t, start.Before(end))
}
