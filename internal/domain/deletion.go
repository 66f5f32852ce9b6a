package domain

// DeletionPolicy is what happens to a cached event when its remote source signals removal
type DeletionPolicy string

const (
	DeletionHard DeletionPolicy = "hard"
	DeletionNone DeletionPolicy = "none"
	DeletionSoft DeletionPolicy = "soft"
)

// DeletionTrigger is the remote signal that may remove a cached event
type DeletionTrigger string

const (
	// TriggerAbsentFromListing: the event is missing from a remote window listing
	TriggerAbsentFromListing DeletionTrigger = "absent_from_listing"
	// TriggerRemoteNotFound: fetching the single remote item returned not found
	TriggerRemoteNotFound DeletionTrigger = "remote_not_found"
	// TriggerRemoteDone: the remote work item reached the done category
	TriggerRemoteDone DeletionTrigger = "remote_done"
)

// deletionPolicies is the single place where deletion rules live
var deletionPolicies = map[EventOrigin]map[DeletionTrigger]DeletionPolicy{
	OriginCalendar: {
		TriggerAbsentFromListing: DeletionHard,
		TriggerRemoteNotFound:    DeletionHard,
		TriggerRemoteDone:        DeletionNone,
	},
	OriginIssue: {
		// Assigned-issue listings drop reassigned issues too; the status pass decides
		TriggerAbsentFromListing: DeletionNone,
		TriggerRemoteNotFound:    DeletionSoft,
		TriggerRemoteDone:        DeletionHard,
	},
}

// DeletionPolicyFor returns the policy for an origin and trigger. Unknown
// combinations keep the row.
func DeletionPolicyFor(origin EventOrigin, trigger DeletionTrigger) DeletionPolicy {
	if byTrigger, ok := deletionPolicies[origin]; ok {
		if policy, ok := byTrigger[trigger]; ok {
			return policy
		}
	}
	return DeletionNone
}
