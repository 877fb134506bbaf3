package usecase

import (
	"github.com/piresc/lleva/internal/pkg/constants"
	"github.com/piresc/lleva/internal/pkg/models"
)

const (
	halfwayThreshold  = 50
	arrivingThreshold = 90
	progressComplete  = 100
)

// onProgressTick advances the simulated progress by one step and re-arms
// itself until the service reaches completion
func (c *Controller) onProgressTick(gen uint64) {
	c.lock()
	defer c.unlock()
	if c.gen != gen || c.state != models.SessionStateActive {
		return
	}
	c.timers.forget(timerProgress)

	step := c.deps.Sim.ProgressStep
	if step <= 0 {
		step = 5
	}
	next := c.progress + step
	if next > progressComplete {
		next = progressComplete
	}
	c.progress = next

	if next >= halfwayThreshold && !c.halfwayNotified {
		c.halfwayNotified = true
		c.notify(constants.TitleServiceUpdate, constants.MessageHalfway, models.NotificationInfo)
	}
	if next >= arrivingThreshold && !c.arrivingNotified {
		c.arrivingNotified = true
		c.notify(constants.TitleServiceUpdate, constants.MessageArriving, models.NotificationInfo)
	}

	if next < progressComplete {
		c.timers.arm(timerProgress, c.deps.Sim.ProgressInterval, func() {
			c.onProgressTick(gen)
		})
	}
	c.pushSnapshot()
}
