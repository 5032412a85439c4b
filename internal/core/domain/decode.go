package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DecodeError reports a missing or malformed field in a search response.
// Decoding is all-or-nothing: one bad item fails the whole batch and no
// partial results are surfaced.
type DecodeError struct {
	// Field is the JSON path of the offending field, e.g. "owner.login".
	Field string

	// Index is the position of the offending item, or -1 for the
	// top-level response object.
	Index int

	// Reason describes what was wrong with the field.
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("decode search response: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("decode items[%d]: %s: %s", e.Index, e.Field, e.Reason)
}

// rawOwner mirrors the owner object of a search item.
// Pointer fields distinguish absent from zero-valued.
type rawOwner struct {
	Login     *string `json:"login"`
	AvatarURL *string `json:"avatar_url"`
}

// rawItem mirrors one element of the items array.
type rawItem struct {
	Name        *string   `json:"name"`
	Owner       *rawOwner `json:"owner"`
	HTMLURL     *string   `json:"html_url"`
	UpdatedAt   *string   `json:"updated_at"`
	Description *string   `json:"description"`
	Language    *string   `json:"language"`
	Score       *float64  `json:"score"`
}

// rawSearchResponse mirrors the top-level search response object.
type rawSearchResponse struct {
	TotalCount *int       `json:"total_count"`
	Items      *[]rawItem `json:"items"`
}

// DecodeSearchResponse maps a raw GitHub repository-search response body
// into a sequence of RepoResult plus the reported total match count.
// Required fields are name, owner.login, owner.avatar_url, html_url and
// updated_at; description and language are nullable and score is optional.
// A null or absent language becomes the NoLanguage sentinel.
func DecodeSearchResponse(body []byte) ([]RepoResult, int, error) {
	var raw rawSearchResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, 0, &DecodeError{Field: "(body)", Index: -1, Reason: err.Error()}
	}
	if raw.Items == nil {
		return nil, 0, &DecodeError{Field: "items", Index: -1, Reason: "missing"}
	}

	records := make([]RepoResult, 0, len(*raw.Items))
	for i, item := range *raw.Items {
		rec, err := decodeItem(i, item)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}

	total := len(records)
	if raw.TotalCount != nil {
		total = *raw.TotalCount
	}
	return records, total, nil
}

func decodeItem(index int, item rawItem) (RepoResult, error) {
	if item.Name == nil {
		return RepoResult{}, &DecodeError{Field: "name", Index: index, Reason: "missing"}
	}
	if item.Owner == nil {
		return RepoResult{}, &DecodeError{Field: "owner", Index: index, Reason: "missing"}
	}
	if item.Owner.Login == nil {
		return RepoResult{}, &DecodeError{Field: "owner.login", Index: index, Reason: "missing"}
	}
	if item.Owner.AvatarURL == nil {
		return RepoResult{}, &DecodeError{Field: "owner.avatar_url", Index: index, Reason: "missing"}
	}
	if item.HTMLURL == nil {
		return RepoResult{}, &DecodeError{Field: "html_url", Index: index, Reason: "missing"}
	}
	if item.UpdatedAt == nil {
		return RepoResult{}, &DecodeError{Field: "updated_at", Index: index, Reason: "missing"}
	}

	updated, err := time.Parse(time.RFC3339, *item.UpdatedAt)
	if err != nil {
		return RepoResult{}, &DecodeError{Field: "updated_at", Index: index, Reason: err.Error()}
	}

	language := NoLanguage
	if item.Language != nil {
		language = *item.Language
	}

	return RepoResult{
		Name:        *item.Name,
		Owner:       Owner{Login: *item.Owner.Login, AvatarURL: *item.Owner.AvatarURL},
		URL:         *item.HTMLURL,
		LastUpdated: updated,
		Description: item.Description,
		Language:    language,
		Score:       item.Score,
	}, nil
}
