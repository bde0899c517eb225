package config

import "github.com/sirupsen/logrus"

// log 配置模块的日志记录器
var log = logrus.WithField("module", "config")

// 参考场景的默认参数，配置中对应项为零值时生效
const (
	defaultInterval            = 1.0
	defaultWorldWidth          = 1000.0
	defaultWorldHeight         = 1000.0
	defaultSpacing             = 10.0
	defaultAmplitude           = 100.0
	defaultWaveNumber          = 0.01
	defaultJitter              = 10.0
	defaultMaxSpeed            = 5.0
	defaultAcceleration        = 0.1
	defaultBraking             = 0.2
	defaultPassiveDeceleration = 0.02
	defaultSteeringRate        = 1.0
	defaultSteeringRelax       = 0.5
	defaultMaxSteering         = 30.0
	defaultRayCount            = 36
	defaultRaySpacing          = 10.0
	defaultRayStep             = 5.0
	defaultMaxRange            = 200.0
	defaultLateralOffset       = 20.0
	defaultTargetSpeed         = 3.0
	defaultSteeringGain        = 0.1
)

// RuntimeConfig 运行时配置
// 功能：存储仿真运行时的配置信息
// 说明：将YAML配置补全默认值并校验后转换为运行时可用的配置对象
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：创建运行时配置对象，进行默认值补全和配置校验
// 参数：config-原始配置对象
// 返回：初始化的运行时配置指针
// 算法说明：
// 1. 对零值的配置项填充参考场景默认值
// 2. 校验关键参数的取值范围，非法配置直接panic
// 说明：确保配置的正确性和一致性，为仿真运行提供有效配置
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}

	rc.All = applyDefaults(config)
	rc.C = rc.All.Control

	validate(rc.All)
	return rc
}

func applyDefaults(c Config) Config {
	setIfZero(&c.Control.Step.Interval, defaultInterval)
	setIfZero(&c.World.Width, defaultWorldWidth)
	setIfZero(&c.World.Height, defaultWorldHeight)

	setIfZero(&c.Road.Spacing, defaultSpacing)
	setIfZero(&c.Road.Baseline, c.World.Height/2)
	setIfZero(&c.Road.Amplitude, defaultAmplitude)
	setIfZero(&c.Road.WaveNumber, defaultWaveNumber)
	setIfZero(&c.Road.Jitter, defaultJitter)

	setIfZero(&c.Vehicle.MaxSpeed, defaultMaxSpeed)
	setIfZero(&c.Vehicle.Acceleration, defaultAcceleration)
	setIfZero(&c.Vehicle.Braking, defaultBraking)
	setIfZero(&c.Vehicle.PassiveDeceleration, defaultPassiveDeceleration)
	setIfZero(&c.Vehicle.SteeringRate, defaultSteeringRate)
	setIfZero(&c.Vehicle.SteeringRelax, defaultSteeringRelax)
	setIfZero(&c.Vehicle.MaxSteering, defaultMaxSteering)
	setIfZero(&c.Vehicle.StartX, c.World.Width/2)
	setIfZero(&c.Vehicle.StartY, c.Road.Baseline)

	if c.Sensor.RayCount == 0 {
		c.Sensor.RayCount = defaultRayCount
	}
	setIfZero(&c.Sensor.RaySpacing, defaultRaySpacing)
	setIfZero(&c.Sensor.RayStep, defaultRayStep)
	setIfZero(&c.Sensor.MaxRange, defaultMaxRange)
	setIfZero(&c.Sensor.LateralOffset, defaultLateralOffset)

	setIfZero(&c.Controller.TargetSpeed, defaultTargetSpeed)
	setIfZero(&c.Controller.SteeringGain, defaultSteeringGain)
	return c
}

func setIfZero(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

func validate(c Config) {
	if c.Control.Step.Interval <= 0 {
		log.Panicf("control.step.interval must be positive, got %v", c.Control.Step.Interval)
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		log.Panicf("world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.Road.Spacing <= 0 {
		log.Panicf("road.spacing must be positive, got %v", c.Road.Spacing)
	}
	if c.Road.Jitter < 0 {
		log.Panicf("road.jitter must be non-negative, got %v", c.Road.Jitter)
	}
	if c.Vehicle.MaxSpeed <= 0 {
		log.Panicf("vehicle.max_speed must be positive, got %v", c.Vehicle.MaxSpeed)
	}
	if c.Vehicle.MaxSteering <= 0 {
		log.Panicf("vehicle.max_steering must be positive, got %v", c.Vehicle.MaxSteering)
	}
	if c.Sensor.RayCount <= 0 || c.Sensor.RayStep <= 0 || c.Sensor.MaxRange <= 0 {
		log.Panicf("invalid sensor config: %+v", c.Sensor)
	}
}
