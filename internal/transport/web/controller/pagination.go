package controller

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/beliefted/beliefted-server/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

func parsePagination(q url.Values) (page, pageSize int, err error) {
	page = defaultPage
	pageSize = defaultPageSize

	if q.Has("page") {
		p, err := strconv.Atoi(q.Get("page"))
		if err != nil || p < 1 {
			return 0, 0, fmt.Errorf("%w: invalid page [%s]", domain.ErrInvalidInput, q.Get("page"))
		}
		page = p
	}

	if q.Has("page_size") {
		ps, err := strconv.Atoi(q.Get("page_size"))
		if err != nil || ps < 1 {
			return 0, 0, fmt.Errorf("%w: invalid page size [%s]", domain.ErrInvalidInput, q.Get("page_size"))
		}
		if ps > maxPageSize {
			return 0, 0, fmt.Errorf("%w: page size [%d] exceeds limit [%d]", domain.ErrInvalidInput, ps, maxPageSize)
		}
		pageSize = ps
	}

	return page, pageSize, nil
}
