package sensor

import (
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/roadsim-oss/entity"
	"github.com/tsinghua-fib-lab/roadsim-oss/utils/config"
)

// Sensor 传感器模拟器
// 功能：根据车辆位姿与道路模型生成激光雷达扫描与横向接近读数
// 说明：所有读数在每步运动学更新完成后整体重算，供下一步闭环与外部渲染消费
type Sensor struct {
	ctx entity.ITaskContext

	cfg   config.Sensor // 传感器参数（只读）
	world config.World  // 世界范围（只读）

	rays    []int                 // 射线索引，构造时生成
	scan    entity.LidarScan      // 本步扫描结果
	lateral entity.LateralReading // 本步横向接近读数
}

// New 创建并初始化传感器模拟器
// 参数：ctx-任务上下文
// 返回：初始化完成的Sensor实例
func New(ctx entity.ITaskContext) *Sensor {
	rc := ctx.RuntimeConfig()
	return &Sensor{
		ctx:   ctx,
		cfg:   rc.All.Sensor,
		world: rc.All.World,
		rays:  lo.Range(rc.All.Sensor.RayCount),
		scan:  make(entity.LidarScan, rc.All.Sensor.RayCount),
	}
}

// Update 更新阶段：以更新后的车辆位姿重新计算所有读数
func (s *Sensor) Update() {
	road := s.ctx.Road()
	veh := s.ctx.Vehicle()
	s.updateLidar(road, veh)
	s.updateLateral(road, veh)
}

// Scan 获取本步激光雷达扫描结果
// 说明：返回内部切片，调用方不得修改；无命中的射线读数Valid为false，
// 消费方绘制射线端点时必须排除这些读数
func (s *Sensor) Scan() entity.LidarScan {
	return s.scan
}

// Lateral 获取本步横向接近读数
func (s *Sensor) Lateral() entity.LateralReading {
	return s.lateral
}
