package models

// DomainQueryRequest is the input for both the batch and streaming endpoints.
// Text is free-form multi-line input; Lines are pre-split blobs. When both
// are supplied, Text is processed after Lines.
type DomainQueryRequest struct {
	Text  string   `json:"text,omitempty" example:"alpha\nbeta"`
	Lines []string `json:"lines,omitempty"`
}

// DomainQueryItem represents one completed whois check.
type DomainQueryItem struct {
	Domain       string `json:"domain" example:"alpha.com"`
	DomainSuffix string `json:"domain_suffix" example:"com"`
	IsRegistered bool   `json:"is_registered"`
	QueryTime    string `json:"query_time,omitempty" example:"2026-01-12 10:00:30"`
}

// DomainQueryResponse is the batch endpoint output, in candidate order.
type DomainQueryResponse struct {
	Items []DomainQueryItem `json:"items"`
}
