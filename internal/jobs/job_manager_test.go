package jobs_test

import (
	"errors"
	"testing"

	"mealorders/internal/jobs"

	"github.com/stretchr/testify/assert"
)

type recordingJob struct {
	name     string
	startErr error
	log      *[]string
}

func (j *recordingJob) Start() error {
	*j.log = append(*j.log, "start "+j.name)
	return j.startErr
}

func (j *recordingJob) Stop() {
	*j.log = append(*j.log, "stop "+j.name)
}

func TestJobManager_StartsInOrderStopsInReverse(t *testing.T) {
	var log []string
	jm := jobs.NewJobManager(&recordingJob{name: "a", log: &log}, &recordingJob{name: "b", log: &log})

	assert.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, log)
}

func TestJobManager_FailedStartStopsStartedJobs(t *testing.T) {
	var log []string
	jm := jobs.NewJobManager(
		&recordingJob{name: "a", log: &log},
		&recordingJob{name: "b", startErr: errors.New("bad schedule"), log: &log},
		&recordingJob{name: "c", log: &log},
	)

	err := jm.StartAll()

	assert.ErrorContains(t, err, "bad schedule")
	assert.Equal(t, []string{"start a", "start b", "stop a"}, log)

	jm.StopAll()
	assert.Len(t, log, 3, "nothing left to stop")
}
