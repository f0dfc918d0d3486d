package scheduler

import (
	"github.com/rs/zerolog"
)

// Checkpointer is satisfied by *database.DB
type Checkpointer interface {
	Name() string
	WALCheckpoint(mode string) error
}

// CheckpointJob truncates the WAL of the given databases
type CheckpointJob struct {
	databases []Checkpointer
	log       zerolog.Logger
}

// NewCheckpointJob creates a new CheckpointJob
func NewCheckpointJob(log zerolog.Logger, databases ...Checkpointer) *CheckpointJob {
	return &CheckpointJob{
		databases: databases,
		log:       log.With().Str("job", "wal_checkpoint").Logger(),
	}
}

// Name returns the job name
func (j *CheckpointJob) Name() string {
	return "wal_checkpoint"
}

// Run checkpoints every database. A failing database does not stop the others;
// the first error is returned.
func (j *CheckpointJob) Run() error {
	var firstErr error
	for _, db := range j.databases {
		if err := db.WALCheckpoint("TRUNCATE"); err != nil {
			j.log.Warn().Err(err).Str("database", db.Name()).Msg("WAL checkpoint failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		j.log.Debug().Str("database", db.Name()).Msg("WAL checkpointed")
	}
	return firstErr
}
