package entity

import (
	"git.fiblab.net/general/common/v2/geometry"
	"github.com/tsinghua-fib-lab/roadsim-oss/clock"
	"github.com/tsinghua-fib-lab/roadsim-oss/utils/config"
)

// entity/road/road.go的依赖倒置
type IRoad interface {
	Count() int               // 道路点数量
	Points() []geometry.Point // 道路点序列，调用方不得修改
}

// entity/vehicle/vehicle.go的依赖倒置
type IVehicle interface {
	Position() geometry.Point // 本步更新后的位置
	Heading() float64         // 本步更新后的航向角（度，无界累积，不回绕）
	V() float64               // 本步更新后的速度
	SteeringAngle() float64   // 本步更新后的转向角（度）
}

type ITaskContext interface {
	Clock() *clock.Clock
	RuntimeConfig() *config.RuntimeConfig
	Road() IRoad
	Vehicle() IVehicle
}
