package road

import (
	"math"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/tsinghua-fib-lab/roadsim-oss/utils/config"
	"github.com/tsinghua-fib-lab/roadsim-oss/utils/randengine"
)

// Road 道路实体
// 功能：表示程序化生成的道路中心线折线，构造完成后不可变
// 说明：点按生成顺序定义折线段（点i到点i+1），所有读取接口均为只读
type Road struct {
	points []geometry.Point // 道路点序列
}

// New 创建并初始化道路
// 功能：在两倍世界宽度范围内按固定水平间距生成道路点
// 参数：cfg-道路生成配置，worldWidth-世界宽度，engine-随机数引擎
// 返回：初始化完成的Road实例
// 算法说明：
// 1. x从0按spacing步进至2*worldWidth（含端点）
// 2. y = baseline + amplitude*sin(k*x) + [-jitter, jitter)内的均匀抖动
// 3. 构造完成后点序列不再修改
// 说明：除注入的抖动外生成过程是确定性的，相同种子产生完全一致的点序列
func New(cfg config.Road, worldWidth float64, engine *randengine.Engine) *Road {
	r := &Road{}
	count := int(2*worldWidth/cfg.Spacing) + 1
	r.points = make([]geometry.Point, 0, count)
	for i := 0; i < count; i++ {
		x := float64(i) * cfg.Spacing
		y := cfg.Baseline + cfg.Amplitude*math.Sin(cfg.WaveNumber*x)
		if cfg.Jitter > 0 {
			y += engine.UniformRange(-cfg.Jitter, cfg.Jitter)
		}
		r.points = append(r.points, geometry.Point{X: x, Y: y})
	}
	return r
}

// Count 获取道路点数量
func (r *Road) Count() int {
	return len(r.points)
}

// Points 获取道路点序列
// 说明：返回内部切片，调用方不得修改
func (r *Road) Points() []geometry.Point {
	return r.points
}

// SegmentCount 获取道路折线段数量
func (r *Road) SegmentCount() int {
	if len(r.points) == 0 {
		return 0
	}
	return len(r.points) - 1
}

// Segment 获取第i条折线段的两个端点
func (r *Road) Segment(i int) (geometry.Point, geometry.Point) {
	return r.points[i], r.points[i+1]
}
