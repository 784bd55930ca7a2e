package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ReplyList хранится в JSONB-колонке поста и перезаписывается целиком
// вместе с постом (last-write-wins).
type ReplyList []Reply

func (r ReplyList) Value() (driver.Value, error) {
	if r == nil {
		r = ReplyList{}
	}
	return json.Marshal(r)
}

func (r *ReplyList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*r = ReplyList{}
		return nil
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	}
	return fmt.Errorf("неподдерживаемый тип для ReplyList: %T", src)
}

// StringSet - множество идентификаторов цитат в записи избранного.
// Семантика множества обеспечивается в сервисном слое, в БД лежит JSONB-массив.
type StringSet []string

func (s StringSet) Value() (driver.Value, error) {
	if s == nil {
		s = StringSet{}
	}
	return json.Marshal(s)
}

func (s *StringSet) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = StringSet{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return fmt.Errorf("неподдерживаемый тип для StringSet: %T", src)
}

// Contains сообщает, отмечен ли идентификатор в множестве.
func (s StringSet) Contains(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}
