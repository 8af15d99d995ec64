package analytics

// Alias tables for productivity rows. Order is precedence: the first key
// holding a usable value wins.
var (
	UserIDAliases     = []string{"user_id", "id", "user", "username"}
	NameAliases       = []string{"name", "full_name", "username"}
	DepartmentAliases = []string{"department", "department_name", "dept"}
	BreakdownAliases  = []string{"status_breakdown", "statuses", "status_counts", "status_count_by_state"}

	PendingAliases    = []string{"pending_now", "pending"}
	InProgressAliases = []string{"in_progress", "progress"}
	InReviewAliases   = []string{"in_review", "review"}
	FinishedAliases   = []string{"attended_period", "finished"}
	AssignedAliases   = []string{"assigned_total", "assigned_period", "assigned", "total"}
)

// Bucket is one of the four status columns a breakdown map feeds.
type Bucket string

const (
	BucketPending    Bucket = "pending"
	BucketInProgress Bucket = "inProgress"
	BucketInReview   Bucket = "inReview"
	BucketFinished   Bucket = "finished"
)

// breakdownKeys maps folded breakdown keys (see record.FoldKey) to buckets.
var breakdownKeys = map[string]Bucket{
	"pendiente":   BucketPending,
	"pending":     BucketPending,
	"pending now": BucketPending,
	"pendientes":  BucketPending,
	"in progress": BucketInProgress,
	"inprogress":  BucketInProgress,
	"en progreso": BucketInProgress,
	"progreso":    BucketInProgress,
	"progress":    BucketInProgress,
	"inreview":    BucketInReview,
	"in review":   BucketInReview,
	"revision":    BucketInReview,
	"review":      BucketInReview,
	"en revision": BucketInReview,
	"revisado":    BucketInReview,
	"finalizada":  BucketFinished,
	"finalizadas": BucketFinished,
	"finalizado":  BucketFinished,
	"finished":    BucketFinished,
	"done":        BucketFinished,
	"completada":  BucketFinished,
	"completadas": BucketFinished,
}
