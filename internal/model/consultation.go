package model

// ProductLine is a single purchased/rented item inside a consultation.
// Copay is a denormalized copy of the record-level copay at the time the
// line was stamped. Quantity stays a string: the source form allowed empty
// values and the statistics engine owns the "empty counts as 1" rule.
type ProductLine struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Copay    string `json:"copay"`
}

// Consultation represents a single client consultation record.
type Consultation struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	Name       string `gorm:"column:name;type:VARCHAR(100);not null" json:"name"`      // 이름
	Gender     string `gorm:"column:gender;type:VARCHAR(20)" json:"gender"`            // 성별
	Birth      string `gorm:"column:birth;type:VARCHAR(20)" json:"birth"`              // 생년월일
	Phone      string `gorm:"column:phone;type:VARCHAR(30)" json:"phone"`              // 연락처
	RefType    string `gorm:"column:ref_type;type:VARCHAR(50)" json:"refType"`         // 연계구분
	Copay      string `gorm:"column:copay;type:VARCHAR(20)" json:"copay"`              // 본인부담금 구분
	CareGrade  string `gorm:"column:care_grade;type:VARCHAR(20)" json:"careGrade"`     // 장기요양등급
	CareNumber string `gorm:"column:care_number;type:VARCHAR(50)" json:"careNumber"`   // 인정번호
	Address    string `gorm:"column:address;type:VARCHAR(255)" json:"address"`         // 주소
	Content    string `gorm:"column:content;type:TEXT" json:"content"`                 // 상담 내용
	Date       string `gorm:"column:date;type:VARCHAR(10);not null;index" json:"date"` // 상담일 (yyyy-MM-dd)

	// 구매목록 - JSON 컬럼으로 저장해 라인 순서를 그대로 보존한다
	Products []ProductLine `gorm:"column:products;serializer:json;type:TEXT" json:"products"`

	BaseEntity
}

// TableName specifies the table name for Consultation
func (*Consultation) TableName() string {
	return "consultations"
}
