package handler

import (
	"fmt"
	"net/http"
	"time"
)

const dateLayout = "2006-01-02"

func parseDateQuery(r *http.Request, key string) (*time.Time, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", key)
	}
	return &parsed, nil
}

// parseDateRange reads the optional from/to bounds shared by the list and
// export endpoints. Missing bounds stay nil; an inverted range is rejected.
func parseDateRange(r *http.Request) (*time.Time, *time.Time, error) {
	from, err := parseDateQuery(r, "from")
	if err != nil {
		return nil, nil, err
	}
	to, err := parseDateQuery(r, "to")
	if err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("from must be before to")
	}
	return from, to, nil
}
