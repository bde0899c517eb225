package vehicle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/roadsim-oss/clock"
	"github.com/tsinghua-fib-lab/roadsim-oss/entity"
	"github.com/tsinghua-fib-lab/roadsim-oss/entity/vehicle"
	"github.com/tsinghua-fib-lab/roadsim-oss/utils/config"
)

// testContext is a minimal ITaskContext for driving a vehicle without the task loop.
type testContext struct {
	rc *config.RuntimeConfig
}

func (c *testContext) Clock() *clock.Clock                  { return nil }
func (c *testContext) RuntimeConfig() *config.RuntimeConfig { return c.rc }
func (c *testContext) Road() entity.IRoad                   { return nil }
func (c *testContext) Vehicle() entity.IVehicle             { return nil }

func newTestContext(targetSpeed float64) *testContext {
	return &testContext{rc: &config.RuntimeConfig{All: config.Config{
		World: config.World{Width: 1000, Height: 1000},
		Vehicle: config.Vehicle{
			MaxSpeed:            5,
			Acceleration:        0.1,
			Braking:             0.2,
			PassiveDeceleration: 0.02,
			SteeringRate:        1,
			SteeringRelax:       0.5,
			MaxSteering:         30,
			StartX:              500,
			StartY:              500,
		},
		Sensor:     config.Sensor{RayCount: 36, RaySpacing: 10, RayStep: 5, MaxRange: 200, LateralOffset: 20},
		Controller: config.Controller{TargetSpeed: targetSpeed, SteeringGain: 0.1},
	}}}
}

func tick(v *vehicle.Vehicle, lateral entity.LateralReading, manual entity.ManualInput) {
	v.Prepare()
	v.Update(1, lateral, manual)
}

func noReadings() entity.LateralReading {
	return entity.LateralReading{}
}

func TestSpeedApproachesTarget(t *testing.T) {
	v := vehicle.New(newTestContext(3))
	prev := v.V()
	for i := 0; i < 30; i++ {
		tick(v, noReadings(), entity.ManualInput{})
		assert.GreaterOrEqual(t, v.V(), prev)
		// repeated 0.1 additions land a few ulps above the target
		assert.LessOrEqual(t, v.V(), 3.0+1e-9)
		prev = v.V()
	}
	assert.InDelta(t, 3.0, v.V(), 1e-9)
}

func TestSpeedAndSteeringClamps(t *testing.T) {
	v := vehicle.New(newTestContext(3))
	for i := 0; i < 100; i++ {
		tick(v, noReadings(), entity.ManualInput{Accelerate: true, SteerLeft: true})
		assert.GreaterOrEqual(t, v.V(), 0.0)
		assert.LessOrEqual(t, v.V(), 5.0)
		assert.GreaterOrEqual(t, v.SteeringAngle(), -30.0)
		assert.LessOrEqual(t, v.SteeringAngle(), 30.0)
	}
	assert.Equal(t, 5.0, v.V())
	assert.Equal(t, -30.0, v.SteeringAngle())

	// braking never goes below zero
	for i := 0; i < 100; i++ {
		tick(v, noReadings(), entity.ManualInput{Brake: true})
	}
	assert.Equal(t, 0.0, v.V())
}

func TestIdleAtRest(t *testing.T) {
	// target speed 0, vehicle at rest with zero steering: repeated ticks change nothing
	v := vehicle.New(newTestContext(0))
	pos := v.Position()
	heading := v.Heading()
	for i := 0; i < 10; i++ {
		tick(v, noReadings(), entity.ManualInput{})
		assert.Equal(t, pos, v.Position())
		assert.Equal(t, heading, v.Heading())
		assert.Equal(t, 0.0, v.V())
		assert.Equal(t, 0.0, v.SteeringAngle())
	}
}

func TestToroidalWrap(t *testing.T) {
	ctx := newTestContext(3)
	ctx.rc.All.Vehicle.StartX = 999.5
	v := vehicle.New(ctx)
	// accelerate straight along +X: x = 999.6, 999.8, then 1000.1 wraps to 0.1
	for i := 0; i < 3; i++ {
		tick(v, noReadings(), entity.ManualInput{Accelerate: true})
	}
	assert.InDelta(t, 0.1, v.Position().X, 1e-9)
}

func TestHeadingAuthorityScalesWithSpeed(t *testing.T) {
	// at zero speed the heading must not change regardless of steering angle
	v := vehicle.New(newTestContext(0))
	for i := 0; i < 10; i++ {
		tick(v, noReadings(), entity.ManualInput{SteerRight: true})
	}
	assert.Greater(t, v.SteeringAngle(), 0.0)
	assert.Equal(t, 0.0, v.Heading())
}

func TestSteeringRelaxesWithoutOvershoot(t *testing.T) {
	v := vehicle.New(newTestContext(0))
	for i := 0; i < 3; i++ {
		tick(v, noReadings(), entity.ManualInput{SteerRight: true})
	}
	assert.InDelta(t, 3.0, v.SteeringAngle(), 1e-9)
	// accelerate-only manual input leaves steering centering at 0.5 deg per tick
	for i := 0; i < 10; i++ {
		tick(v, noReadings(), entity.ManualInput{Accelerate: true})
		assert.GreaterOrEqual(t, v.SteeringAngle(), 0.0)
	}
	assert.Equal(t, 0.0, v.SteeringAngle())
}

func TestManualOverridePriority(t *testing.T) {
	v := vehicle.New(newTestContext(0))
	// contradictory manual input: acceleration and left steer win
	tick(v, noReadings(), entity.ManualInput{
		Accelerate: true, Brake: true,
		SteerLeft: true, SteerRight: true,
	})
	assert.Equal(t, entity.ThrottleAccelerate, v.LastAction().Throttle)
	assert.Equal(t, entity.SteerLeft, v.LastAction().Steer)
}

func TestAutonomousSteeringTarget(t *testing.T) {
	v := vehicle.New(newTestContext(3))

	// symmetric readings: steering target is zero
	tick(v, entity.LateralReading{
		Left:  entity.Reading{Distance: 25, Valid: true},
		Right: entity.Reading{Distance: 25, Valid: true},
	}, entity.ManualInput{})
	assert.Equal(t, entity.SteerDirect, v.LastAction().Steer)
	assert.Equal(t, 0.0, v.LastAction().SteerTo)
	assert.Equal(t, 0.0, v.SteeringAngle())

	// left reading closer: steer away from the left boundary
	tick(v, entity.LateralReading{
		Left:  entity.Reading{Distance: 10, Valid: true},
		Right: entity.Reading{Distance: 50, Valid: true},
	}, entity.ManualInput{})
	assert.InDelta(t, -4.0, v.LastAction().SteerTo, 1e-9)

	// a missing side dominates: the offset saturates the steering clamp
	tick(v, entity.LateralReading{
		Right: entity.Reading{Distance: 10, Valid: true},
	}, entity.ManualInput{})
	assert.Equal(t, 30.0, v.SteeringAngle())

	// dominance holds even when the valid side is far beyond the sensor range:
	// the lateral minimum is uncapped, so no finite distance may outweigh a
	// missing side
	tick(v, entity.LateralReading{
		Right: entity.Reading{Distance: 450, Valid: true},
	}, entity.ManualInput{})
	assert.Equal(t, 30.0, v.LastAction().SteerTo)
	assert.Equal(t, 30.0, v.SteeringAngle())

	// both sides missing: no offset, no steering
	tick(v, noReadings(), entity.ManualInput{})
	assert.Equal(t, 0.0, v.LastAction().SteerTo)
}
