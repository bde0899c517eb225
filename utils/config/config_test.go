package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/roadsim-oss/utils/config"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	rc := config.NewRuntimeConfig(config.Config{})

	assert.Equal(t, 1.0, rc.C.Step.Interval)
	assert.Equal(t, 1000.0, rc.All.World.Width)
	assert.Equal(t, 500.0, rc.All.Road.Baseline) // half the world height
	assert.Equal(t, 36, rc.All.Sensor.RayCount)
	assert.Equal(t, 10.0, rc.All.Sensor.RaySpacing)
	assert.Equal(t, 200.0, rc.All.Sensor.MaxRange)
	assert.Equal(t, 5.0, rc.All.Vehicle.MaxSpeed)
	assert.Equal(t, 30.0, rc.All.Vehicle.MaxSteering)
	assert.Equal(t, 3.0, rc.All.Controller.TargetSpeed)
	assert.Equal(t, 0.1, rc.All.Controller.SteeringGain)
	// vehicle starts centered on the road baseline
	assert.Equal(t, 500.0, rc.All.Vehicle.StartX)
	assert.Equal(t, 500.0, rc.All.Vehicle.StartY)
}

func TestRuntimeConfigKeepsExplicitValues(t *testing.T) {
	c := config.Config{}
	c.Vehicle.MaxSpeed = 8
	c.Sensor.RayCount = 72
	rc := config.NewRuntimeConfig(c)
	assert.Equal(t, 8.0, rc.All.Vehicle.MaxSpeed)
	assert.Equal(t, 72, rc.All.Sensor.RayCount)
}

func TestRuntimeConfigRejectsInvalid(t *testing.T) {
	assert.Panics(t, func() {
		c := config.Config{}
		c.Road.Jitter = -1
		config.NewRuntimeConfig(c)
	})
	assert.Panics(t, func() {
		c := config.Config{}
		c.Control.Step.Interval = -1
		config.NewRuntimeConfig(c)
	})
}
