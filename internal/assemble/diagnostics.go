package assemble

import "fmt"

// WarningKind tags one class of recoverable assembly condition.
type WarningKind string

// Recoverable condition classes. None of them fail an assembly pass.
const (
	WarnUnresolvedReference WarningKind = "unresolved_reference"
	WarnExtractionMiss      WarningKind = "extraction_miss"
	WarnUnparsedDate        WarningKind = "unparsed_date"
)

// Warning is one recoverable condition hit while assembling a record.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Subject string      `json:"subject"`
	Detail  string      `json:"detail,omitempty"`
}

func (w Warning) String() string {
	if w.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", w.Kind, w.Subject, w.Detail)
	}
	return fmt.Sprintf("%s: %s", w.Kind, w.Subject)
}

// Diagnostics accumulates the non-fatal conditions of one assembly pass.
// The zero value is ready to use.
type Diagnostics struct {
	Warnings []Warning
}

func (d *Diagnostics) warn(kind WarningKind, subject, detail string) {
	d.Warnings = append(d.Warnings, Warning{Kind: kind, Subject: subject, Detail: detail})
}

// Count reports the number of accumulated warnings.
func (d *Diagnostics) Count() int {
	return len(d.Warnings)
}
