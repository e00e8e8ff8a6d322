package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// TypeWeeklyDigest is the asynq task type for the admin pending-report
// digest.
const TypeWeeklyDigest = "digest:weekly"

// DigestPayload bounds one digest run to a reporting window.
type DigestPayload struct {
	WindowStart time.Time `json:"windowStart"`
}

// NewWeeklyDigestTask builds the digest task for the week ending now.
func NewWeeklyDigestTask(windowStart time.Time) (*asynq.Task, error) {
	b, err := json.Marshal(DigestPayload{WindowStart: windowStart})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeWeeklyDigest, b), nil
}
