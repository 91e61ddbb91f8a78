package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOf_KnownProduct(t *testing.T) {
	assert.Equal(t, "미끄럼방지매트", CategoryOf("BLS-700"))
	assert.Equal(t, "수동휠체어", CategoryOf("KNA-101JW"))
	assert.Equal(t, "전동침대", CategoryOf("WS8830"))
}

func TestCategoryOf_UnknownProduct(t *testing.T) {
	assert.Equal(t, OtherCategory, CategoryOf("등록되지 않은 제품"))
}

func TestCategoryOf_BlankName(t *testing.T) {
	// 이름이 비어 있어도 조회는 시도하고 기타로 떨어진다
	assert.Equal(t, OtherCategory, CategoryOf(""))
}
