package sensor

import (
	"math"

	"git.fiblab.net/general/common/v2/geometry"
	"git.fiblab.net/general/common/v2/parallel"
	"github.com/tsinghua-fib-lab/roadsim-oss/entity"
	"github.com/tsinghua-fib-lab/roadsim-oss/utils/geomutil"
)

// updateLidar 重算整帧激光雷达扫描
// 算法说明：
// 1. 第i条射线的方位角 = 车辆航向角 + i*raySpacing（度）
// 2. 射线自车辆位置按rayStep步进外推，逐步累积已行进距离
// 3. 每步以车辆位置到当前射线端点的线段与全部道路段求交，首个命中即记录累积距离
// 4. 射线端点越出世界范围，或量程耗尽仍未命中，则记为无命中
// 说明：复杂度为O(射线数*步数*道路段数)，在参考规模下可接受；
// 射线间相互独立且只读道路模型，按射线并行计算，各自写入扫描的独立槽位
func (s *Sensor) updateLidar(road entity.IRoad, veh entity.IVehicle) {
	origin := veh.Position()
	heading := veh.Heading()
	points := road.Points()
	parallel.GoFor(s.rays, func(i int) {
		bearing := heading + float64(i)*s.cfg.RaySpacing
		s.scan[i] = s.castRay(points, origin, bearing)
	})
}

// castRay 投射单条射线
// 参数：points-道路点序列，origin-车辆位置，bearingDeg-射线方位角（度）
// 返回：命中时为累积行进距离的读数，否则为无命中读数
func (s *Sensor) castRay(points []geometry.Point, origin geometry.Point, bearingDeg float64) entity.Reading {
	rad := bearingDeg * math.Pi / 180
	dirX, dirY := math.Cos(rad), math.Sin(rad)
	for traveled := s.cfg.RayStep; traveled <= s.cfg.MaxRange; traveled += s.cfg.RayStep {
		tip := geometry.Point{X: origin.X + dirX*traveled, Y: origin.Y + dirY*traveled}
		// 道路横跨两倍世界宽度，射线端点以此为界
		if tip.X < 0 || tip.X > 2*s.world.Width || tip.Y < 0 || tip.Y > s.world.Height {
			return entity.NoReading()
		}
		for j := 0; j+1 < len(points); j++ {
			if geomutil.SegmentsIntersect(origin, tip, points[j], points[j+1]) {
				return entity.Reading{Distance: traveled, Valid: true}
			}
		}
	}
	return entity.NoReading()
}
