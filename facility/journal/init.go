// Package journal routes unified adapters to the systemd journal.
//
// Importing the package registers the journal as the default facility:
//
//	import _ "github.com/trickstertwo/unilog/facility/journal"
//
// Entries carry SYSLOG_IDENTIFIER and UNILOG_SUBSYSTEM set to the
// application identifier and UNILOG_CATEGORY set to the logger label, so
// they can be filtered with:
//
//	journalctl UNILOG_SUBSYSTEM=com.example.app UNILOG_CATEGORY=DISK
package journal

import "github.com/trickstertwo/unilog/adapter/unified"

func init() {
	unified.RegisterDefaultFacility(Facility{})
}
