package sensor

import (
	"math"

	"git.fiblab.net/general/common/v2/mathutil"
	"github.com/tsinghua-fib-lab/roadsim-oss/entity"
)

// updateLateral 更新左右横向接近读数
// 功能：以车辆两侧固定X偏移的虚拟安装点，求到对应一侧道路点的最近欧氏距离
// 算法说明：
// 1. 左侧安装点位于车辆位置X-offset处，右侧位于X+offset处，Y与车辆相同
// 2. 左侧读数取X严格小于车辆X的道路点到左安装点的最小距离，右侧对称
// 3. 对应一侧不存在道路点时读数为"未检测到"
// 说明：安装点偏移沿世界X轴固定，不随航向旋转进入车体坐标系，保留原实现的简化处理
func (s *Sensor) updateLateral(road entity.IRoad, veh entity.IVehicle) {
	pos := veh.Position()
	leftX := pos.X - s.cfg.LateralOffset
	rightX := pos.X + s.cfg.LateralOffset
	minLeft, minRight := mathutil.INF, mathutil.INF
	for _, p := range road.Points() {
		if p.X < pos.X {
			if d := math.Hypot(p.X-leftX, p.Y-pos.Y); d < minLeft {
				minLeft = d
			}
		} else if p.X > pos.X {
			if d := math.Hypot(p.X-rightX, p.Y-pos.Y); d < minRight {
				minRight = d
			}
		}
	}
	s.lateral = entity.LateralReading{}
	if minLeft < mathutil.INF {
		s.lateral.Left = entity.Reading{Distance: minLeft, Valid: true}
	}
	if minRight < mathutil.INF {
		s.lateral.Right = entity.Reading{Distance: minRight, Valid: true}
	}
}
