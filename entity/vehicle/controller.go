package vehicle

import (
	"git.fiblab.net/general/common/v2/mathutil"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/roadsim-oss/entity"
)

// controller 车辆闭环控制器
// 功能：根据当前速度与横向接近读数生成执行指令，每步在运动学更新前执行一次
// 说明：纯粹由快照输入决定输出，不持有跨步可变状态
type controller struct {
	self *Vehicle // 模块所在车辆

	targetSpeed  float64 // 目标速度
	steeringGain float64 // 车道保持转向增益
	maxSteering  float64 // 转向角限幅（度）
}

// newController 创建新的车辆控制器
// 参数：self-车辆实体
// 返回：初始化完成的控制器实例
func newController(self *Vehicle) *controller {
	rc := self.ctx.RuntimeConfig()
	return &controller{
		self:         self,
		targetSpeed:  rc.All.Controller.TargetSpeed,
		steeringGain: rc.All.Controller.SteeringGain,
		maxSteering:  rc.All.Vehicle.MaxSteering,
	}
}

// update 执行一步闭环控制
// 参数：v-当前速度（快照），lateral-上一步的横向接近读数
// 返回：本步执行指令
// 算法说明：
// 1. 速度控制：speedError = targetSpeed - v，为正则加速、为负则制动，
//    恰为零时无纵向指令；加速与制动由构造保证互斥
// 2. 车道保持：laneOffset = left - right，缺失读数以无穷大距离替代，
//    无论另一侧有效读数多远，缺失一侧必然支配偏移方向；
//    两侧均缺失时不参与上述算术，偏移直接为零
// 3. steeringTarget = laneOffset * gain，限幅到[-maxSteering, maxSteering]后
//    以SteerDirect直接下发，绕过离散转向指令
func (l *controller) update(v float64, lateral entity.LateralReading) (ac entity.Action) {
	// 纵向决策
	speedError := l.targetSpeed - v
	switch {
	case speedError > 0:
		ac.Throttle = entity.ThrottleAccelerate
	case speedError < 0:
		ac.Throttle = entity.ThrottleBrake
	default:
		ac.Throttle = entity.ThrottleIdle
	}

	// 横向决策
	laneOffset := 0.0
	if lateral.Left.Valid || lateral.Right.Valid {
		laneOffset = substitute(lateral.Left) - substitute(lateral.Right)
	}
	ac.Steer = entity.SteerDirect
	ac.SteerTo = lo.Clamp(laneOffset*l.steeringGain, -l.maxSteering, l.maxSteering)
	return
}

// substitute 将缺失读数替换为无穷大距离
// 说明：缺失读数是正常且预期的状态，以无穷大距离参与偏移计算而非报错；
// 横向读数是对全部道路点的无界最小值，可超过任何有限量程倍数，
// 只有无穷大能保证缺失一侧恒为支配项。调用方负责排除两侧均缺失的情况
func substitute(r entity.Reading) float64 {
	if !r.Valid {
		return mathutil.INF
	}
	return r.Distance
}
