package entity

import "fmt"

// ThrottleCommand 纵向执行指令
// 功能：以标签化变体取代原实现中可同时为真的accelerating/braking布尔对，使非法状态不可表示
type ThrottleCommand int32

const (
	ThrottleIdle       ThrottleCommand = iota // 无纵向指令，速度被动衰减
	ThrottleAccelerate                        // 加速
	ThrottleBrake                             // 制动
)

// SteerCommand 横向执行指令
type SteerCommand int32

const (
	SteerCenter SteerCommand = iota // 无转向指令，转向角回正
	SteerLeft                       // 向左转向
	SteerRight                      // 向右转向
	SteerDirect                     // 直接设置转向角（自主控制模式）
)

// Action 单步执行指令
// 功能：描述一步内施加给车辆的纵向与横向控制，来源为自主控制器或手动接管
type Action struct {
	Throttle ThrottleCommand // 纵向指令
	Steer    SteerCommand    // 横向指令
	SteerTo  float64         // Steer为SteerDirect时的目标转向角（度）
}

// ManualInput 手动控制输入
// 功能：由外部输入采集（不在本模块范围内）设置的手动接管标志
// 说明：四个标志允许矛盾组合，折算为Action时按固定优先级消解
type ManualInput struct {
	Accelerate bool // 加速
	Brake      bool // 制动
	SteerLeft  bool // 左转
	SteerRight bool // 右转
}

// Active 判断是否存在手动接管
// 返回：任一标志被置位则返回true，该步的自主控制输出被取代
func (m ManualInput) Active() bool {
	return m.Accelerate || m.Brake || m.SteerLeft || m.SteerRight
}

// Reading 距离读数
// 功能：以显式的有效标志表达"未检测到"，避免以数值极大值参与算术运算
type Reading struct {
	Distance float64 // 距离，仅Valid为true时有意义
	Valid    bool    // 是否检测到
}

// NoReading 未检测到的读数
func NoReading() Reading {
	return Reading{}
}

func (r Reading) String() string {
	if !r.Valid {
		return "Reading{none}"
	}
	return fmt.Sprintf("Reading{%.2f}", r.Distance)
}

// LidarScan 一帧激光雷达扫描
// 说明：固定长度，每条射线一个读数，每步整体覆写
type LidarScan []Reading

// LateralReading 左右两侧的横向接近读数，作为车道位置的代理量
type LateralReading struct {
	Left  Reading // 左侧读数
	Right Reading // 右侧读数
}
