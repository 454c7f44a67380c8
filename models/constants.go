package models

// DynamoDB table names.
const (
	PlayListingsTable     = "PlayListings"
	MatchRequestsTable    = "MatchRequests"
	ScheduledMatchesTable = "ScheduledMatches"
	MessagesTable         = "Messages"
	RecentMessagesTable   = "RecentMessages"
	UserProfilesTable     = "UserProfiles"
)

// TargetUIDIndex is the GSI on MatchRequests used to list a user's inbox.
const TargetUIDIndex = "targetUID-index"

// Defaults applied to a freshly scheduled match.
const (
	DefaultMatchNotes    = "No additional notes"
	DefaultMatchDuration = "1 hour"
)
