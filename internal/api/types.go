package api

// CountResponse is the body of GET /contacts/count.
type CountResponse struct {
	Count int64 `json:"count"`
}
