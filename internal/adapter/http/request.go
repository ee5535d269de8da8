package httpadapter

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"stormy/internal/core/domain"
)

// optionalCount accepts a JSON number, a numeric string or null. Zero,
// empty and unparsable values leave it unset so the filter is ignored.
type optionalCount struct {
	value int64
	set   bool
}

func (c *optionalCount) UnmarshalJSON(b []byte) error {
	*c = optionalCount{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	if n := int64(math.Trunc(f)); n != 0 {
		*c = optionalCount{value: n, set: true}
	}
	return nil
}

func (c optionalCount) ptr() *int64 {
	if !c.set {
		return nil
	}
	v := c.value
	return &v
}

// looseFloat accepts a JSON number or numeric string. Anything else
// decodes as 0.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(b []byte) error {
	*f = 0
	raw := string(bytes.TrimSpace(b))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*f = looseFloat(v)
	return nil
}

// looseString accepts a JSON string, or a number or boolean rendered as
// text. Objects, arrays and null decode as "".
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	*s = ""
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '"':
		var v string
		if err := json.Unmarshal(b, &v); err == nil {
			*s = looseString(v)
		}
	case '{', '[', 'n':
	default:
		*s = looseString(b)
	}
	return nil
}

type searchRequest struct {
	Query        looseString   `json:"query"`
	Platform     looseString   `json:"platform"`
	MinFollowers optionalCount `json:"minFollowers"`
	MaxFollowers optionalCount `json:"maxFollowers"`
	Country      looseString   `json:"country"`
}

// handleSearch runs an aggregated creator search. Invalid JSON results in
// HTTP 400; mistyped fields are ignored.
func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	res, err := h.svc.Search.Search(r.Context(), domain.SearchQuery{
		Query:        string(req.Query),
		Platform:     string(req.Platform),
		MinFollowers: req.MinFollowers.ptr(),
		MaxFollowers: req.MaxFollowers.ptr(),
		Country:      string(req.Country),
	})
	if err != nil {
		h.writeDomainError(w, r, "search", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
