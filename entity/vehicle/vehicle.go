package vehicle

import (
	"math"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/roadsim-oss/entity"
	"github.com/tsinghua-fib-lab/roadsim-oss/utils/config"
)

// runtime 车辆运行时数据结构
// 功能：记录车辆在模拟过程中的全部运行时状态
// 说明：该数据结构需要可以被直接复制，不应产生浅拷贝带来的副作用
type runtime struct {
	XY       geometry.Point // 位置
	Heading  float64        // 航向角（度，无界累积，不回绕）
	V        float64        // 速度
	Steering float64        // 前轮转向角（度）
	Action   entity.Action  // 本步施加的执行指令
}

// Vehicle 车辆实体
// 功能：管理车辆的运动学状态与闭环控制器
// 说明：采用快照/运行时双缓冲——每步开始时将运行时状态翻转为快照，
// 本步所有决策读取快照，更新只写运行时，使单步成为快照到新状态的纯函数
type Vehicle struct {
	ctx entity.ITaskContext

	attr  config.Vehicle // 运动学参数（只读）
	world config.World   // 世界范围（只读）

	controller *controller // 闭环控制器

	snapshot runtime // 上一步完成时的状态
	runtime  runtime // 本步更新产生的状态
}

// New 创建并初始化车辆
// 功能：根据运行时配置设置初始位姿，创建控制器
// 参数：ctx-任务上下文
// 返回：初始化完成的Vehicle实例
func New(ctx entity.ITaskContext) *Vehicle {
	rc := ctx.RuntimeConfig()
	v := &Vehicle{
		ctx:   ctx,
		attr:  rc.All.Vehicle,
		world: rc.All.World,
	}
	v.runtime = runtime{
		XY:      geometry.Point{X: v.attr.StartX, Y: v.attr.StartY},
		Heading: v.attr.StartHeading,
	}
	v.snapshot = v.runtime
	v.controller = newController(v)
	return v
}

// Prepare 准备阶段：将运行时状态翻转为快照
func (v *Vehicle) Prepare() {
	v.snapshot = v.runtime
}

// Update 更新阶段：执行闭环控制并推进一步运动学
// 功能：先由控制器（或手动接管）产生执行指令，再据此更新速度、转向角、航向与位置
// 参数：dt-时间步长，lateral-上一步的横向接近读数，manual-手动接管输入
func (v *Vehicle) Update(dt float64, lateral entity.LateralReading, manual entity.ManualInput) {
	ac := v.controller.update(v.snapshot.V, lateral)
	if manual.Active() {
		// 手动接管优先于该步的自主控制输出
		ac = resolveManual(manual)
		log.Debugf("vehicle: manual override %+v -> %+v", manual, ac)
	}
	v.refreshRuntime(ac, dt)
}

// refreshRuntime 根据执行指令推进一步运动学
// 算法说明：
// 1. 速度：加速/制动按固定速率调整，无指令时被动衰减，始终限制在[0, maxSpeed]
// 2. 转向角：离散指令按固定角速度调整，直接指令取限幅后的目标值，
//    无指令时向0回正且不越过零点，始终限制在[-maxSteering, maxSteering]
// 3. 航向角：heading += steering * (v / maxSpeed) * dt，转向权威随速度比例线性缩放，
//    零速时航向不变
// 4. 位置：沿航向角前进v*dt，越出世界范围时环面回绕到另一侧
// 说明：所有限幅在计算处直接实施，没有事后校验
func (v *Vehicle) refreshRuntime(ac entity.Action, dt float64) {
	newRuntime := v.snapshot
	newRuntime.Action = ac

	// 速度
	switch ac.Throttle {
	case entity.ThrottleAccelerate:
		newRuntime.V = math.Min(newRuntime.V+v.attr.Acceleration*dt, v.attr.MaxSpeed)
	case entity.ThrottleBrake:
		newRuntime.V = math.Max(newRuntime.V-v.attr.Braking*dt, 0)
	default:
		newRuntime.V = math.Max(newRuntime.V-v.attr.PassiveDeceleration*dt, 0)
	}

	// 转向角
	switch ac.Steer {
	case entity.SteerLeft:
		newRuntime.Steering = math.Max(newRuntime.Steering-v.attr.SteeringRate*dt, -v.attr.MaxSteering)
	case entity.SteerRight:
		newRuntime.Steering = math.Min(newRuntime.Steering+v.attr.SteeringRate*dt, v.attr.MaxSteering)
	case entity.SteerDirect:
		newRuntime.Steering = lo.Clamp(ac.SteerTo, -v.attr.MaxSteering, v.attr.MaxSteering)
	default:
		// 回正，不越过零点
		relax := v.attr.SteeringRelax * dt
		if newRuntime.Steering > relax {
			newRuntime.Steering -= relax
		} else if newRuntime.Steering < -relax {
			newRuntime.Steering += relax
		} else {
			newRuntime.Steering = 0
		}
	}

	// 航向角
	newRuntime.Heading += newRuntime.Steering * (newRuntime.V / v.attr.MaxSpeed) * dt

	// 位置推进与环面回绕
	rad := newRuntime.Heading * math.Pi / 180
	newRuntime.XY.X = wrap(newRuntime.XY.X+newRuntime.V*dt*math.Cos(rad), v.world.Width)
	newRuntime.XY.Y = wrap(newRuntime.XY.Y+newRuntime.V*dt*math.Sin(rad), v.world.Height)

	v.runtime = newRuntime
}

// wrap 环面回绕：越界后从另一侧进入
func wrap(x, limit float64) float64 {
	x = math.Mod(x, limit)
	if x < 0 {
		x += limit
	}
	return x
}

// getter
// 说明：执行阶段为单线程顺序执行，读取接口返回本步更新后的状态，供传感与外部渲染只读消费

// Position 获取本步更新后的位置
func (v *Vehicle) Position() geometry.Point {
	return v.runtime.XY
}

// Heading 获取本步更新后的航向角（度）
func (v *Vehicle) Heading() float64 {
	return v.runtime.Heading
}

// V 获取本步更新后的速度
func (v *Vehicle) V() float64 {
	return v.runtime.V
}

// SteeringAngle 获取本步更新后的转向角（度）
func (v *Vehicle) SteeringAngle() float64 {
	return v.runtime.Steering
}

// LastAction 获取本步施加的执行指令
func (v *Vehicle) LastAction() entity.Action {
	return v.runtime.Action
}
