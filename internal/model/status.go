package model

import "time"

// Severity classifies a manually authored status card.
type Severity string

const (
	SeverityOK   Severity = "ok"
	SeverityInfo Severity = "info"
	SeverityWarn Severity = "warn"
	SeverityDown Severity = "down"
)

// ManualStatusItem is an admin-authored status card. Slice order is display order.
type ManualStatusItem struct {
	ID        string    `json:"id" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity" validate:"required,oneof=ok info warn down"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Monitor is an admin-configured URL probed by the uptime sweep.
type Monitor struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	TargetURL string `json:"targetUrl" validate:"required,url"`
}

// MonitorResult is the outcome of the most recent probe of one monitor.
// HTTPStatus is nil when the probe failed before a response arrived.
type MonitorResult struct {
	MonitorID  string    `json:"monitorId"`
	OK         bool      `json:"ok"`
	HTTPStatus *int      `json:"httpStatus,omitempty"`
	CheckedAt  time.Time `json:"checkedAt"`
}

// StatusDocument is the singleton status aggregate. Results of monitors that have
// since been removed stay in MonitorResults.
type StatusDocument struct {
	ManualItems    []ManualStatusItem       `json:"manualItems"`
	Monitors       []Monitor                `json:"monitors"`
	MonitorResults map[string]MonitorResult `json:"monitorResults"`
	LastAutoRunAt  *time.Time               `json:"lastAutoRunAt,omitempty"`
	// Revision increases on every write and backs the optional optimistic check on update.
	Revision int64 `json:"revision"`
}

// DefaultStatusDocument returns the document seeded on first read.
func DefaultStatusDocument() *StatusDocument {
	return &StatusDocument{
		ManualItems: []ManualStatusItem{},
		Monitors: []Monitor{
			{
				ID:        "qc-ical",
				Name:      "Queens College Calendar Feed",
				TargetURL: "https://www.calendarwiz.com/CalendarWiz_iCal.php?crd=queenscollege",
			},
			{
				ID:        "cunyfirst",
				Name:      "CUNYfirst Page",
				TargetURL: "https://www.cuny.edu/about/administration/offices/cis/cunyfirst/",
			},
		},
		MonitorResults: map[string]MonitorResult{},
	}
}

// Normalize replaces nil collections with empty ones so the document always
// serializes with arrays and objects rather than nulls.
func (d *StatusDocument) Normalize() {
	if d.ManualItems == nil {
		d.ManualItems = []ManualStatusItem{}
	}
	if d.Monitors == nil {
		d.Monitors = []Monitor{}
	}
	if d.MonitorResults == nil {
		d.MonitorResults = map[string]MonitorResult{}
	}
}
