package client

import (
	"fmt"
	"net/url"
)

// QueryBuilder assembles an encoded query string, dropping parameters
// with empty values so optional filters can be passed through
// unconditionally.
type QueryBuilder struct {
	values url.Values
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{values: url.Values{}}
}

func (q *QueryBuilder) Add(param string, value any) *QueryBuilder {
	s := fmt.Sprintf("%v", value)
	if s != "" {
		q.values.Set(param, s)
	}
	return q
}

func (q *QueryBuilder) IsEmpty() bool {
	return len(q.values) == 0
}

func (q *QueryBuilder) String() string {
	return q.values.Encode()
}
