package config

// ControlStep 指定模拟器模拟时间范围和间隔的配置项
// 功能：定义仿真时间控制参数
// 说明：控制仿真的时间范围与步长
type ControlStep struct {
	Start    int32   `yaml:"start"`    // 开始步数
	Total    int32   `yaml:"total"`    // 总步数
	Interval float64 `yaml:"interval"` // 每步的时间间隔（秒）
}

// Control 模拟器控制配置
type Control struct {
	Step ControlStep `yaml:"step"`
}

// World 世界范围配置
// 说明：车辆位置在该范围内环面回绕（越界后从另一侧进入）
type World struct {
	Width  float64 `yaml:"width"`  // 世界宽度
	Height float64 `yaml:"height"` // 世界高度
}

// Road 道路生成配置
// 功能：定义程序化道路中心线的生成参数
// 说明：道路点纵向偏移 = baseline + amplitude*sin(wave_number*x) + 均匀抖动
type Road struct {
	Spacing    float64 `yaml:"spacing"`     // 道路点水平间距
	Baseline   float64 `yaml:"baseline"`    // 正弦基线（纵向偏移）
	Amplitude  float64 `yaml:"amplitude"`   // 正弦振幅
	WaveNumber float64 `yaml:"wave_number"` // 正弦波数k
	Jitter     float64 `yaml:"jitter"`      // 抖动幅度，均匀分布于[-jitter, jitter]
	Seed       uint64  `yaml:"seed"`        // 随机种子
}

// Vehicle 车辆运动学配置
type Vehicle struct {
	MaxSpeed            float64 `yaml:"max_speed"`            // 最大速度
	Acceleration        float64 `yaml:"acceleration"`         // 加速度
	Braking             float64 `yaml:"braking"`              // 制动减速度
	PassiveDeceleration float64 `yaml:"passive_deceleration"` // 无纵向指令时的被动减速度
	SteeringRate        float64 `yaml:"steering_rate"`        // 离散转向指令下的转向角速度（度/秒）
	SteeringRelax       float64 `yaml:"steering_relax"`       // 无转向指令时的回正角速度（度/秒）
	MaxSteering         float64 `yaml:"max_steering"`         // 转向角限幅（度）
	StartX              float64 `yaml:"start_x"`              // 初始位置X
	StartY              float64 `yaml:"start_y"`              // 初始位置Y
	StartHeading        float64 `yaml:"start_heading"`        // 初始航向角（度）
}

// Sensor 传感器模拟配置
type Sensor struct {
	RayCount      int     `yaml:"ray_count"`      // 激光雷达射线数
	RaySpacing    float64 `yaml:"ray_spacing"`    // 相邻射线的角间隔（度）
	RayStep       float64 `yaml:"ray_step"`       // 射线步进长度
	MaxRange      float64 `yaml:"max_range"`      // 最大探测距离
	LateralOffset float64 `yaml:"lateral_offset"` // 左右虚拟传感器安装点的X偏移
}

// Controller 闭环控制配置
type Controller struct {
	TargetSpeed  float64 `yaml:"target_speed"`  // 目标速度
	SteeringGain float64 `yaml:"steering_gain"` // 车道保持转向增益
}

// Config YAML配置文件的根结构
// 功能：定义整个仿真系统的配置结构
type Config struct {
	Control    Control    `yaml:"control"`    // 模拟过程控制
	World      World      `yaml:"world"`      // 世界范围
	Road       Road       `yaml:"road"`       // 道路生成
	Vehicle    Vehicle    `yaml:"vehicle"`    // 车辆
	Sensor     Sensor     `yaml:"sensor"`     // 传感器
	Controller Controller `yaml:"controller"` // 控制器
}
