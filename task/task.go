package task

import (
	"github.com/tsinghua-fib-lab/roadsim-oss/clock"
	"github.com/tsinghua-fib-lab/roadsim-oss/entity"
	"github.com/tsinghua-fib-lab/roadsim-oss/entity/road"
	"github.com/tsinghua-fib-lab/roadsim-oss/entity/sensor"
	"github.com/tsinghua-fib-lab/roadsim-oss/entity/vehicle"
	"github.com/tsinghua-fib-lab/roadsim-oss/utils/config"
	"github.com/tsinghua-fib-lab/roadsim-oss/utils/randengine"
)

// Context 仿真任务上下文
// 功能：包含一次仿真任务的所有变量和状态，替代原实现中依附于UI定时器回调的全局可变字段
// 说明：单线程顺序执行，车辆与道路仅由任务循环持有，不需要加锁
type Context struct {

	// 时钟
	clock *clock.Clock
	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig
	// 随机数引擎
	engine *randengine.Engine

	// 道路模型
	road *road.Road
	// 车辆
	vehicle *vehicle.Vehicle
	// 传感器模拟器
	sensor *sensor.Sensor

	// 手动接管输入，由外部驱动在每步之前设置，仅对该步生效
	manual entity.ManualInput
}

// NewContext 创建新的仿真任务上下文
// 功能：初始化仿真系统的所有组件和配置
// 参数：c-配置对象
// 返回：初始化完成的Context实例
// 算法说明：
// 1. 补全默认值并校验配置
// 2. 创建时钟与随机数引擎
// 3. 程序化生成道路模型（仅此处消耗随机数）
// 4. 创建车辆与传感器模拟器
func NewContext(c config.Config) *Context {
	ctx := &Context{}
	ctx.runtimeConfig = config.NewRuntimeConfig(c)
	ctx.clock = clock.New(ctx.runtimeConfig.C.Step)
	ctx.engine = randengine.New(ctx.runtimeConfig.All.Road.Seed)

	ctx.road = road.New(ctx.runtimeConfig.All.Road, ctx.runtimeConfig.All.World.Width, ctx.engine)
	ctx.vehicle = vehicle.New(ctx)
	ctx.sensor = sensor.New(ctx)

	return ctx
}

// Init 初始化仿真状态
// 说明：重置时钟，并以初始位姿执行一次传感，使首步闭环即有可用读数
func (ctx *Context) Init() {
	ctx.clock.Init()
	log.Infof("road points: %v", ctx.road.Count())
	ctx.sensor.Update()
}

// SetManualInput 设置手动接管输入
// 功能：外部输入采集向仿真核心反馈的唯一通道
func (ctx *Context) SetManualInput(in entity.ManualInput) {
	ctx.manual = in
}

// getter
// 说明：外部渲染在每步执行完毕后只读消费这些状态，不得写回

func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

func (ctx *Context) Road() entity.IRoad {
	return ctx.road
}

func (ctx *Context) Vehicle() entity.IVehicle {
	return ctx.vehicle
}

// LidarScan 获取本步激光雷达扫描结果
func (ctx *Context) LidarScan() entity.LidarScan {
	return ctx.sensor.Scan()
}

// LateralReading 获取本步横向接近读数
func (ctx *Context) LateralReading() entity.LateralReading {
	return ctx.sensor.Lateral()
}
