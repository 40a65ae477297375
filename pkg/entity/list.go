package entity

// ListResponse is the envelope Stripe wraps around every list endpoint.
// Data keeps the order the server returned. When HasMore is set, a follow-up
// request with starting_after set to the last ID returns the next page.
type ListResponse[T any] struct {
	Object  string `json:"object"`
	URL     string `json:"url"`
	HasMore bool   `json:"has_more"`
	Data    []T    `json:"data"`

	// TotalCount is only sent when requested with include[]=total_count.
	TotalCount *int64 `json:"total_count"`
}

type listFields[T any] ListResponse[T]

// UnmarshalJSON decodes every element of data with T's rules. A single bad
// element fails the whole list.
func (l *ListResponse[T]) UnmarshalJSON(data []byte) error {
	return decodeStrict("ListResponse", data, (*listFields[T])(l))
}

// Last returns the final element of the page, the cursor for the next page.
func (l *ListResponse[T]) Last() (T, bool) {
	var zero T
	if len(l.Data) == 0 {
		return zero, false
	}
	return l.Data[len(l.Data)-1], true
}
