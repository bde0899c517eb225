package vehicle

import (
	"github.com/tsinghua-fib-lab/roadsim-oss/entity"
)

// resolveManual 将手动输入折算为执行指令
// 功能：手动接管时取代该步的自主控制输出
// 说明：同时按下加速与制动时加速优先，同时按下左右转向时左转优先，
// 与原实现中按求值顺序产生的隐式优先级保持一致
func resolveManual(in entity.ManualInput) (ac entity.Action) {
	switch {
	case in.Accelerate:
		ac.Throttle = entity.ThrottleAccelerate
	case in.Brake:
		ac.Throttle = entity.ThrottleBrake
	}
	switch {
	case in.SteerLeft:
		ac.Steer = entity.SteerLeft
	case in.SteerRight:
		ac.Steer = entity.SteerRight
	}
	return
}
