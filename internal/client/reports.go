package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Report and snapshot generation states.
const (
	StatusInProgress = "IN_PROGRESS"
	StatusSuccess    = "SUCCESS"
	StatusFailure    = "FAILURE"
)

// JobStatus is the status document of a report or snapshot. Location is set
// once Status is SUCCESS.
type JobStatus struct {
	ReportID      string `json:"reportId,omitempty"`
	SnapshotID    string `json:"snapshotId,omitempty"`
	RecordType    string `json:"recordType,omitempty"`
	Status        string `json:"status"`
	StatusDetails string `json:"statusDetails,omitempty"`
	Location      string `json:"location,omitempty"`
	FileSize      int64  `json:"fileSize,omitempty"`
}

// ID returns whichever of ReportID or SnapshotID is set.
func (s JobStatus) ID() string {
	if s.ReportID != "" {
		return s.ReportID
	}
	return s.SnapshotID
}

// Ready reports whether the artifact can be downloaded.
func (s JobStatus) Ready() bool {
	return s.Status == StatusSuccess && s.Location != ""
}

// ParseJobStatus decodes the status document carried by a successful outcome.
func ParseJobStatus(o Outcome) (JobStatus, error) {
	var st JobStatus
	if err := o.Err(); err != nil {
		return st, err
	}
	if err := json.Unmarshal([]byte(o.Data), &st); err != nil {
		return st, fmt.Errorf("parsing status response: %w", err)
	}
	if st.Status == "" {
		return st, fmt.Errorf("status not found in response")
	}
	return st, nil
}

// RequestReport asks the API to generate a report for recordType
// (campaigns, adGroups, keywords, productAds, targets ...). data typically
// carries reportDate, metrics and segment.
func (s *Service) RequestReport(ctx context.Context, recordType string, data any, t CampaignType) Outcome {
	if recordType == "" {
		return emptyField("record_type")
	}
	return s.api.Call(ctx, typedPath(t, recordType, "report"), data, http.MethodPost)
}

// ReportStatus polls a report. It never downloads.
func (s *Service) ReportStatus(ctx context.Context, reportID string) Outcome {
	if reportID == "" {
		return emptyField("report_id")
	}
	return s.api.Call(ctx, "reports/"+reportID, nil, http.MethodGet)
}

// GetReport polls a report and, when generation has finished, downloads it.
// While the report is still in progress the status outcome is returned as is.
func (s *Service) GetReport(ctx context.Context, reportID string) Outcome {
	if reportID == "" {
		return emptyField("report_id")
	}
	return s.resolve(ctx, s.api.Call(ctx, "reports/"+reportID, nil, http.MethodGet))
}

// RequestSnapshot asks for a snapshot of every entity of recordType. The
// campaignType body field defaults to sponsoredProducts.
func (s *Service) RequestSnapshot(ctx context.Context, recordType string, data map[string]any, t CampaignType) Outcome {
	if recordType == "" {
		return emptyField("record_type")
	}
	body := make(map[string]any, len(data)+1)
	for k, v := range data {
		body[k] = v
	}
	if v, ok := body["campaignType"]; !ok || v == "" || v == nil {
		body["campaignType"] = "sponsoredProducts"
	}
	return s.api.Call(ctx, typedPath(t, recordType, "snapshot"), body, http.MethodPost)
}

// SnapshotStatus polls a snapshot under its campaign type prefix.
func (s *Service) SnapshotStatus(ctx context.Context, snapshotID string, t CampaignType) Outcome {
	if snapshotID == "" {
		return emptyField("snapshot_id")
	}
	return s.api.Call(ctx, typedPath(t, "snapshots", snapshotID), nil, http.MethodGet)
}

// GetSnapshot polls a snapshot and downloads it once generation has finished.
func (s *Service) GetSnapshot(ctx context.Context, snapshotID string) Outcome {
	if snapshotID == "" {
		return emptyField("snapshot_id")
	}
	return s.resolve(ctx, s.api.Call(ctx, "snapshots/"+snapshotID, nil, http.MethodGet))
}

// resolve follows a finished status outcome to its download.
func (s *Service) resolve(ctx context.Context, status Outcome) Outcome {
	if !status.Success {
		return status
	}
	st, err := ParseJobStatus(status)
	if err != nil {
		return failure(status.Code, err.Error())
	}
	if st.Status != StatusSuccess {
		return status
	}
	if st.Location == "" {
		return failure(status.Code, "location not found in status response.")
	}
	return s.api.Download(ctx, st.Location)
}
