package application

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// StatusService reports daemon-level information
type StatusService struct {
	instanceID uuid.UUID
	version    string
	startedAt  time.Time
	control    SamplingControl
}

// NewStatusService creates a status service with a fresh instance ID
func NewStatusService(version string, control SamplingControl) *StatusService {
	return &StatusService{
		instanceID: uuid.New(),
		version:    version,
		startedAt:  time.Now(),
		control:    control,
	}
}

// InstanceID returns the process-unique identifier
func (s *StatusService) InstanceID() uuid.UUID {
	return s.instanceID
}

// Status returns the current daemon status
func (s *StatusService) Status() StatusResponse {
	ticks := s.control.Tick()
	return StatusResponse{
		InstanceID:             s.instanceID.String(),
		Version:                s.version,
		StartedAt:              s.startedAt,
		Started:                humanize.Time(s.startedAt),
		Sampling:               s.control.Running(),
		RefreshIntervalSeconds: int(s.control.Interval() / time.Second),
		Ticks:                  ticks,
		TicksDisplay:           humanize.Comma(int64(ticks)),
	}
}
