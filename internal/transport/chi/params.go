package chi

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/kailas-cloud/shopsearch/internal/domain/search/filter"
)

// filterFromQuery reads category, price_range ("25-50"), min_price, max_price
// and min_rating. price_range wins over the separate bounds.
func filterFromQuery(q url.Values) (filter.Filter, error) {
	var price *filter.Range
	if raw := q.Get("price_range"); raw != "" {
		r, err := filter.ParseRange(raw)
		if err != nil {
			return filter.Filter{}, err
		}
		price = &r
	} else {
		lo, err := floatParam(q, "min_price")
		if err != nil {
			return filter.Filter{}, err
		}
		hi, err := floatParam(q, "max_price")
		if err != nil {
			return filter.Filter{}, err
		}
		if lo != nil || hi != nil {
			r, err := filter.NewRange(lo, hi)
			if err != nil {
				return filter.Filter{}, err
			}
			price = &r
		}
	}

	minRating, err := floatParam(q, "min_rating")
	if err != nil {
		return filter.Filter{}, err
	}
	return filter.New(q.Get("category"), price, minRating)
}

func floatParam(q url.Values, name string) (*float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	return &v, nil
}

func intParam(q url.Values, name string) (*int, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &v, nil
}

func boolParam(q url.Values, name string) (*bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be true or false", name)
	}
	return &v, nil
}
