package dto

import (
	"time"

	"stayops/shared/constant"
	"stayops/shared/model"
	"stayops/shared/timezone"
)

// Metadata is the audit block embedded in every response, rendered in the application timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(metadata model.Metadata) {
	m.CreatedAt = formatTimestamp(metadata.CreatedAt)
	m.ModifiedAt = formatTimestamp(metadata.ModifiedAt)
	m.CreatedBy = metadata.CreatedBy
	m.ModifiedBy = metadata.ModifiedBy
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return constant.Empty
	}

	return timezone.Format(t, constant.DateFormat)
}
