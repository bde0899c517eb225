package task

import (
	"flag"
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 100, "心跳日志间隔步数")
)

// prepare 准备阶段，每步执行一次
// 功能：在每个仿真步骤开始时进行准备工作
// 算法说明：
// 1. 更新时钟：步数加一并重新计算当前时间
// 2. 心跳日志：定期输出系统状态信息
// 3. 车辆快照翻转：本步所有决策基于上一步完成时的状态
func (ctx *Context) prepare() {
	ctx.clock.InternalStep++
	ctx.clock.T = float64(ctx.clock.InternalStep) * ctx.clock.DT

	if ctx.clock.InternalStep%int32(*heartBeatInterval) == 0 {
		log.Infof(
			"STEP: %d(%v) v=%.2f steering=%.2f",
			ctx.clock.InternalStep, ctx.clock,
			ctx.vehicle.V(), ctx.vehicle.SteeringAngle(),
		)
	}

	ctx.vehicle.Prepare()
}

// update 更新阶段，每步执行一次
// 功能：执行一步闭环仿真：控制 → 运动学 → 传感
// 说明：车辆更新读取上一步的横向接近读数，传感以更新后的位姿重算全部读数，
// 传感结果反馈给下一步的控制决策
func (ctx *Context) update() {
	ctx.vehicle.Update(ctx.clock.DT, ctx.sensor.Lateral(), ctx.manual)
	ctx.sensor.Update()
}

// Step 执行一个完整模拟步
// 功能：仿真核心对外的唯一执行边界，供任意外部驱动（实时循环、无头测试、定步批处理）调用
// 说明：一步执行完毕后，外部渲染方可只读消费车辆位姿、扫描与横向读数
func (ctx *Context) Step() {
	ctx.prepare()
	ctx.update()
}

// Run 运行到结束步
func (ctx *Context) Run() {
	ctx.Init()
	for {
		ctx.Step()
		if ctx.clock.InternalStep+1 >= ctx.clock.END_STEP {
			break
		}
	}
	pos := ctx.vehicle.Position()
	log.Infof(
		"engine complete: steps=%d pos=(%.1f,%.1f) heading=%.1f v=%.2f",
		ctx.clock.InternalStep-ctx.clock.START_STEP,
		pos.X, pos.Y, ctx.vehicle.Heading(), ctx.vehicle.V(),
	)
}
