package catalog

// OtherCategory is the sentinel bucket for products that do not appear in
// the consultation catalog, and for blank names.
const OtherCategory = "기타"

// CopayRates are the four known payment-share codes. Anything else falls
// into the 기타 bucket at aggregation time.
var CopayRates = []string{"15%", "9%", "6%", "0%"}

// ConsultProductOptions maps consultation catalog categories to the
// product names selectable on the consultation form.
var ConsultProductOptions = map[string][]string{
	"수동휠체어": {
		"MIRAGE7(22D)",
		"MIRAGE-7(22D)-B",
		"MiKi-W",
		"KNA-101JW",
		"KNA-2",
		"KNA-W",
		"NT-22P",
		"NT-22D",
		"NA-101W",
	},
	"전동침대": {
		"WS8830",
		"WS9930",
		"NYSI-1200",
		"NY-1100",
		"NYM-1300",
	},
	"욕창방지매트리스": {
		"AD-III TPU BEAM",
		"YH-0305TPU",
	},
	"미끄럼방지매트": {
		"BLS-700",
		"BLS-800",
		"HM-301",
	},
	"욕창방지방석": {
		"TB-C101",
		"AERO-C",
	},
	"성인용보행기": {
		"YU-100",
		"YU-110",
		"BL-500",
	},
	"이동변기": {
		"PN-L30100",
		"HS-8200",
	},
	"목욕의자": {
		"PN-L41021",
		"BS-100",
	},
	"안전손잡이": {
		"GR-100",
		"GR-200",
	},
}

// RentalProductOptions maps rental inventory categories to model names
// selectable on the rental product registration form.
var RentalProductOptions = map[string][]string{
	"수동휠체어": {
		"MIRAGE7(22D)",
		"MIRAGE-7(22D)-B",
		"MiKi-W",
		"KNA-101JW",
		"KNA-2",
		"KNA-W",
		"NT-22P",
		"NT-22D",
		"NA-101W",
		"위탁",
	},
	"전동침대": {
		"WS8830",
		"WS9930",
		"NYSI-1200",
		"NY-1100",
		"NYM-1300",
		"위탁",
	},
	"욕창방지매트리스": {
		"AD-III TPU BEAM",
		"YH-0305TPU",
		"위탁",
	},
}

// CategoryOf resolves a product name to its consultation catalog category
// by reverse lookup. Unknown and blank names map to 기타.
func CategoryOf(productName string) string {
	for category, items := range ConsultProductOptions {
		for _, item := range items {
			if item == productName {
				return category
			}
		}
	}
	return OtherCategory
}
