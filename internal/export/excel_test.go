package export

import (
	"testing"

	"github.com/bokjion/rental-care-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestConsultationWorkbook(t *testing.T) {
	// Given: 상담 기록 2건
	consultations := []model.Consultation{
		{
			Name:      "김영희",
			Phone:     "010-1234-5678",
			CareGrade: "3등급",
			Date:      "2025-06-10",
			Content:   "첫 줄\n둘째 줄",
			Products: []model.ProductLine{
				{Name: "BLS-700", Quantity: "2", Copay: "15%"},
				{Name: "WS8830", Quantity: "", Copay: "15%"},
			},
		},
		{
			Name: "박철수",
			Date: "2025-06-11",
		},
	}

	// When
	buf, err := ConsultationWorkbook(consultations)
	require.NoError(t, err)

	// Then: 생성된 워크북을 다시 열어 내용 확인
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Equal(t, []string{ConsultationSheetName}, sheets)

	header, err := f.GetCellValue(ConsultationSheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "이름", header)

	name, err := f.GetCellValue(ConsultationSheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "김영희", name)

	products, err := f.GetCellValue(ConsultationSheetName, "F2")
	require.NoError(t, err)
	assert.Equal(t, "BLS-700 (2), WS8830", products)

	// 제품이 없는 기록은 "-" 표기
	emptyProducts, err := f.GetCellValue(ConsultationSheetName, "F3")
	require.NoError(t, err)
	assert.Equal(t, "-", emptyProducts)
}

func TestFormatProducts(t *testing.T) {
	assert.Equal(t, "-", FormatProducts(nil))
	assert.Equal(t, "BLS-700", FormatProducts([]model.ProductLine{{Name: "BLS-700"}}))
	assert.Equal(t, "BLS-700 (2), KNA-2",
		FormatProducts([]model.ProductLine{
			{Name: "BLS-700", Quantity: "2"},
			{Name: "KNA-2"},
		}))
}
