package export

import (
	"bytes"
	"fmt"

	"github.com/bokjion/rental-care-api/internal/model"
	"github.com/xuri/excelize/v2"
)

// ConsultationSheetName is the single worksheet of the download.
const ConsultationSheetName = "상담내역"

// ConsultationFileName is the suggested download filename.
const ConsultationFileName = "상담내역.xlsx"

var consultationHeader = []string{
	"이름",
	"연락처",
	"등급",
	"상담일",
	"상담내용",
	"제품목록",
}

// ConsultationWorkbook serializes consultation records into an xlsx
// workbook. Multi-line text cells (상담내용, 제품목록) wrap.
func ConsultationWorkbook(consultations []model.Consultation) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(ConsultationSheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("시트 생성 실패: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("헤더 스타일 생성 실패: %w", err)
	}

	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("본문 스타일 생성 실패: %w", err)
	}

	for col, title := range consultationHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("셀 좌표 계산 실패: %w", err)
		}
		if err := f.SetCellValue(ConsultationSheetName, cell, title); err != nil {
			f.Close()
			return nil, fmt.Errorf("헤더 기록 실패: %w", err)
		}
		if err := f.SetCellStyle(ConsultationSheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("헤더 스타일 적용 실패: %w", err)
		}
	}

	for i, item := range consultations {
		rowNum := i + 2
		values := []interface{}{
			item.Name,
			item.Phone,
			item.CareGrade,
			item.Date,
			item.Content,
			FormatProducts(item.Products),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("셀 좌표 계산 실패: %w", err)
			}
			if err := f.SetCellValue(ConsultationSheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("데이터 기록 실패: %w", err)
			}
		}

		// 상담내용과 제품목록은 여러 줄이 될 수 있다
		contentCell, _ := excelize.CoordinatesToCellName(5, rowNum)
		productsCell, _ := excelize.CoordinatesToCellName(6, rowNum)
		if err := f.SetCellStyle(ConsultationSheetName, contentCell, productsCell, wrapStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("본문 스타일 적용 실패: %w", err)
		}
	}

	widths := map[string]float64{"A": 12, "B": 16, "C": 10, "D": 12, "E": 40, "F": 40}
	for col, width := range widths {
		if err := f.SetColWidth(ConsultationSheetName, col, col, width); err != nil {
			f.Close()
			return nil, fmt.Errorf("열 너비 설정 실패: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("워크북 직렬화 실패: %w", err)
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("워크북 종료 실패: %w", err)
	}

	return buf, nil
}

// FormatProducts renders the 구매목록 column: "이름 (수량)" entries joined by
// a comma, or "-" when the record has no lines.
func FormatProducts(products []model.ProductLine) string {
	if len(products) == 0 {
		return "-"
	}

	out := ""
	for i, p := range products {
		if i > 0 {
			out += ", "
		}
		if p.Quantity != "" {
			out += fmt.Sprintf("%s (%s)", p.Name, p.Quantity)
		} else {
			out += p.Name
		}
	}
	return out
}
