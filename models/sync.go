package models

// Snapshot is the full remote catalog fetched in one sync attempt. It is
// ephemeral: consumed immediately by the replace-all operation and never
// persisted as its own entity.
type Snapshot struct {
	Categories []Category
	Services   []Service
}

// SyncState describes where the sync orchestrator currently is in its
// Idle -> Syncing -> {Synced | SyncFailed} cycle.
type SyncState int

const (
	SyncIdle SyncState = iota
	SyncSyncing
	SyncSynced
	SyncFailed
)

func (s SyncState) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncSyncing:
		return "syncing"
	case SyncSynced:
		return "synced"
	case SyncFailed:
		return "sync_failed"
	default:
		return "unknown"
	}
}

// TriggerReason records why a sync pass was requested. It is carried into
// logs so overlapping trigger sources can be told apart.
type TriggerReason string

const (
	TriggerAppStart     TriggerReason = "app_start"
	TriggerConnectivity TriggerReason = "connectivity_online"
	TriggerPostMutation TriggerReason = "post_mutation"
	TriggerManual       TriggerReason = "manual_refresh"
	TriggerScheduled    TriggerReason = "scheduled"
)

// SyncOutcome is the result of a single Trigger call.
type SyncOutcome int

const (
	// SyncCompleted means the remote snapshot was fetched and the local
	// cache now reflects it.
	SyncCompleted SyncOutcome = iota
	// SyncSoftFailed means the remote fetch or the local replace failed and
	// the cache was left at its last-known-good state. Readers should keep
	// serving cached data.
	SyncSoftFailed
	// SyncSkippedOffline means connectivity is known to be down, so no
	// remote call was attempted.
	SyncSkippedOffline
	// SyncDeferred means connectivity is still undetermined; the trigger was
	// ignored and should be re-issued once a real reading arrives.
	SyncDeferred
	// SyncCoalesced means another sync pass was already in flight and this
	// trigger was folded into it.
	SyncCoalesced
)

func (o SyncOutcome) String() string {
	switch o {
	case SyncCompleted:
		return "completed"
	case SyncSoftFailed:
		return "soft_failed"
	case SyncSkippedOffline:
		return "skipped_offline"
	case SyncDeferred:
		return "deferred"
	case SyncCoalesced:
		return "coalesced"
	default:
		return "unknown"
	}
}

// Connectivity is the tri-state network signal supplied by the watcher.
// Unknown means the first real reading has not arrived yet and the
// orchestrator must neither sync nor assume offline.
type Connectivity int

const (
	ConnectivityUnknown Connectivity = iota
	ConnectivityOffline
	ConnectivityOnline
)

func (c Connectivity) String() string {
	switch c {
	case ConnectivityOffline:
		return "offline"
	case ConnectivityOnline:
		return "online"
	default:
		return "unknown"
	}
}
