// Package reconcile provides the building blocks shared by the template
// reconciliation jobs: name-set differences, severity-tagged report entries
// and aggregate summaries.
//
// # Model
//
// Reconciliation compares the names a template defines against the names an
// object actually owns. Missing returns the template names that have no match,
// compared as exact, case-sensitive strings. Duplicate names collapse, and the
// result is sorted so reports are deterministic.
//
// # Reports
//
// A Report collects Entries. Each entry carries a Severity (info, warning,
// success, failure), the object it is attributed to, the category it concerns
// and the affected names. Summary aggregates what a job run saw and did.
//
// # Usage
//
//	missing := reconcile.Missing(templateNames, deviceNames)
//	if len(missing) > 0 {
//	    report.Add(reconcile.Entry{
//	        Severity: reconcile.SeverityWarning,
//	        Object:   &reconcile.ObjectRef{Type: "dcim.device", ID: 7, Name: "edge-1"},
//	        Category: "interface",
//	        Names:    missing,
//	    })
//	}
package reconcile
