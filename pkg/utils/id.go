package utils

import (
	"fmt"
	"math"
	"strconv"
)

// ParseID разбирает идентификатор записи. Колонка id имеет тип BIGSERIAL,
// поэтому значения больше math.MaxInt64 отклоняются.
func ParseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if id > math.MaxInt64 {
		return 0, fmt.Errorf("id %s вне диапазона bigint", s)
	}
	return id, nil
}
