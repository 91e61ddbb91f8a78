package model

// RentalProduct represents one physical rental equipment unit.
// Barcode uniqueness is advisory: the service performs a pre-insert
// existence check instead of a storage-level unique constraint, so two
// racing submissions can still both insert. CurrentRenter and Status are
// denormalized from the latest history entry.
type RentalProduct struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	Category      string `gorm:"column:category;type:VARCHAR(100);not null" json:"category"`        // 품목명
	ProductName   string `gorm:"column:product_name;type:VARCHAR(100);not null" json:"productName"` // 제품명
	ModelName     string `gorm:"column:model_name;type:VARCHAR(100);not null" json:"modelName"`     // 모델명
	Barcode       string `gorm:"column:barcode;type:VARCHAR(100);not null;index" json:"barcode"`    // 바코드
	Status        string `gorm:"column:status;type:VARCHAR(50)" json:"status"`                      // 대여/위탁/보관
	RegisterDate  string `gorm:"column:register_date;type:VARCHAR(10)" json:"registerDate"`         // 최초 등록일자 (yyyy-MM-dd)
	CurrentRenter string `gorm:"column:current_renter;type:VARCHAR(100)" json:"currentRenter"`      // 현재 수급자

	BaseEntity
}

// TableName specifies the table name for RentalProduct
func (*RentalProduct) TableName() string {
	return "rental_products"
}

// RentalHistory is one rental/consignment/storage event for a product.
// Many entries reference one product; deleting a product does not cascade
// to its history (the source left cascade behavior undefined).
type RentalHistory struct {
	ID        uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID uint32 `gorm:"column:product_id;not null;index" json:"productId"`

	Renter          string `gorm:"column:renter;type:VARCHAR(100);not null" json:"renter"`           // 수급자
	ApprovalNumber  string `gorm:"column:approval_number;type:VARCHAR(50)" json:"approvalNumber"`    // 인정번호
	Type            string `gorm:"column:type;type:VARCHAR(50);not null" json:"type"`                // 구분 (대여/위탁/보관)
	ContractPeriod  string `gorm:"column:contract_period;type:VARCHAR(100)" json:"contractPeriod"`   // 계약기간
	RentAddressType string `gorm:"column:rent_address_type;type:VARCHAR(100)" json:"rentAddressType"` // 대여지구분 (기타는 자유입력 치환)
	RentAddress     string `gorm:"column:rent_address;type:VARCHAR(255)" json:"rentAddress"`         // 대여지주소
	Org             string `gorm:"column:org;type:VARCHAR(100)" json:"org"`                          // 연계기관
	Memo            string `gorm:"column:memo;type:TEXT" json:"memo"`                                // 기타내용

	BaseEntity
}

// TableName specifies the table name for RentalHistory
func (*RentalHistory) TableName() string {
	return "rental_history"
}
